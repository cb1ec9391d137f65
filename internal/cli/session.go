package cli

import (
	"fmt"
	"io"

	"github.com/viant/taskmgr/schema"
)

type LoginCommand struct {
	app      *App
	Email    string `short:"e" long:"email" required:"true" description:"account email"`
	Password string `short:"p" long:"password" required:"true" description:"account password"`
}

func (c *LoginCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	result, err := cli.Login(c.app.ctx, &schema.Credentials{Email: c.Email, Password: c.Password})
	if err != nil {
		return err
	}
	return c.app.print(result.User, func(w io.Writer) {
		if result.User != nil {
			fmt.Fprintf(w, "logged in as %s\n", result.User.Email)
			return
		}
		fmt.Fprintln(w, "logged in")
	})
}

type RegisterCommand struct {
	app      *App
	Email    string `short:"e" long:"email" required:"true" description:"account email"`
	Name     string `short:"n" long:"name" required:"true" description:"full name"`
	Password string `short:"p" long:"password" required:"true" description:"account password"`
	Image    string `short:"i" long:"image" description:"avatar image location"`
}

func (c *RegisterCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	image, err := c.app.file(c.Image)
	if err != nil {
		return err
	}
	result, err := cli.Register(c.app.ctx, &schema.Registration{Email: c.Email, FullName: c.Name, Password: c.Password, Image: image})
	if err != nil {
		return err
	}
	return c.app.print(result.User, func(w io.Writer) {
		fmt.Fprintf(w, "registered %s\n", c.Email)
	})
}

type LogoutCommand struct {
	app *App
}

func (c *LogoutCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = cli.Logout(c.app.ctx); err != nil {
		return err
	}
	return c.app.print(map[string]bool{"loggedOut": true}, func(w io.Writer) {
		fmt.Fprintln(w, "logged out")
	})
}

type WhoAmICommand struct {
	app *App
}

func (c *WhoAmICommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	user, err := cli.CurrentUser(c.app.ctx)
	if err != nil {
		return err
	}
	return c.app.print(user, func(w io.Writer) {
		printUser(w, user)
	})
}
