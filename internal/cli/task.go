package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/viant/taskmgr/schema"
)

type TaskCommand struct {
	List   TaskListCommand   `command:"list" description:"list tasks"`
	Create TaskCreateCommand `command:"create" description:"create a task"`
	Update TaskUpdateCommand `command:"update" description:"update a task"`
	Delete TaskDeleteCommand `command:"delete" description:"delete a task"`
}

type TaskListCommand struct {
	app    *App
	Search string `short:"s" long:"search" description:"search title and description"`
	Sort   string `long:"sort" description:"sort field" choice:"createdAt" choice:"title"`
	Order  string `long:"order" description:"sort order" choice:"asc" choice:"desc"`
}

func (c *TaskListCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	tasks, err := cli.ListTasks(c.app.ctx, &schema.TaskQuery{Search: c.Search, Sort: c.Sort, Order: c.Order})
	if err != nil {
		return err
	}
	return c.app.print(tasks, func(w io.Writer) {
		for _, task := range tasks {
			printTask(w, task)
		}
	})
}

type TaskFields struct {
	Title       string `short:"t" long:"title" description:"task title"`
	Description string `short:"d" long:"description" description:"task description"`
	Image       string `short:"i" long:"image" description:"image location"`
}

func (f *TaskFields) input(app *App) (*schema.TaskInput, error) {
	image, err := app.file(f.Image)
	if err != nil {
		return nil, err
	}
	return &schema.TaskInput{Title: f.Title, Description: f.Description, Image: image}, nil
}

type TaskCreateCommand struct {
	app *App
	TaskFields
}

func (c *TaskCreateCommand) Execute(args []string) error {
	if c.Title == "" {
		return errors.New("task title is required")
	}
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	input, err := c.input(c.app)
	if err != nil {
		return err
	}
	task, err := cli.CreateTask(c.app.ctx, input)
	if err != nil {
		return err
	}
	return c.app.print(task, func(w io.Writer) {
		printTask(w, task)
	})
}

type TaskUpdateCommand struct {
	app *App
	ID  string `long:"id" required:"true" description:"task id"`
	TaskFields
}

func (c *TaskUpdateCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	input, err := c.input(c.app)
	if err != nil {
		return err
	}
	task, err := cli.UpdateTask(c.app.ctx, c.ID, input)
	if err != nil {
		return err
	}
	return c.app.print(task, func(w io.Writer) {
		printTask(w, task)
	})
}

type TaskDeleteCommand struct {
	app *App
	ID  string `long:"id" required:"true" description:"task id"`
}

func (c *TaskDeleteCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = cli.DeleteTask(c.app.ctx, c.ID); err != nil {
		return err
	}
	return c.app.print(map[string]string{"deleted": c.ID}, func(w io.Writer) {
		fmt.Fprintf(w, "deleted %s\n", c.ID)
	})
}
