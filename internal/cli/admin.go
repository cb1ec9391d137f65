package cli

import (
	"io"

	"github.com/viant/taskmgr/schema"
)

type AdminCommand struct {
	Users   AdminUsersCommand   `command:"users" description:"list users"`
	Block   AdminBlockCommand   `command:"block" description:"block users"`
	Unblock AdminUnblockCommand `command:"unblock" description:"unblock a user"`
}

type AdminUsersCommand struct {
	app *App
}

func (c *AdminUsersCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	users, err := cli.ListUsers(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(users, func(w io.Writer) {
		for _, user := range users {
			printUser(w, user)
		}
	})
}

type AdminBlockCommand struct {
	app  *App
	Args struct {
		IDs []string `positional-arg-name:"id" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *AdminBlockCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	users, err := cli.BlockUsers(c.app.ctx, c.Args.IDs...)
	if err != nil {
		return err
	}
	return c.app.print(users, func(w io.Writer) {
		for _, user := range users {
			printUser(w, user)
		}
	})
}

type AdminUnblockCommand struct {
	app  *App
	Args struct {
		ID string `positional-arg-name:"id"`
	} `positional-args:"yes" required:"yes"`
}

func (c *AdminUnblockCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	user, err := cli.UnblockUser(c.app.ctx, c.Args.ID)
	if err != nil {
		return err
	}
	return c.app.print([]*schema.User{user}, func(w io.Writer) {
		printUser(w, user)
	})
}
