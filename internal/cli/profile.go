package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/viant/taskmgr/schema"
)

type ProfileCommand struct {
	Update   ProfileUpdateCommand   `command:"update" description:"update name or email"`
	Password ProfilePasswordCommand `command:"password" description:"change password"`
	Avatar   ProfileAvatarCommand   `command:"avatar" description:"upload a new avatar"`
}

type ProfileUpdateCommand struct {
	app   *App
	Name  string `short:"n" long:"name" description:"full name"`
	Email string `short:"e" long:"email" description:"email"`
}

func (c *ProfileUpdateCommand) Execute(args []string) error {
	if c.Name == "" && c.Email == "" {
		return errors.New("nothing to update, use --name or --email")
	}
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	user, err := cli.UpdateAccount(c.app.ctx, &schema.AccountUpdate{FullName: c.Name, Email: c.Email})
	if err != nil {
		return err
	}
	return c.app.print(user, func(w io.Writer) {
		printUser(w, user)
	})
}

type ProfilePasswordCommand struct {
	app *App
	Old string `long:"old" required:"true" description:"current password"`
	New string `long:"new" required:"true" description:"new password"`
}

func (c *ProfilePasswordCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	if err = cli.ChangePassword(c.app.ctx, &schema.PasswordChange{OldPassword: c.Old, NewPassword: c.New}); err != nil {
		return err
	}
	return c.app.print(map[string]bool{"passwordChanged": true}, func(w io.Writer) {
		fmt.Fprintln(w, "password changed")
	})
}

type ProfileAvatarCommand struct {
	app  *App
	File string `short:"f" long:"file" required:"true" description:"image location"`
}

func (c *ProfileAvatarCommand) Execute(args []string) error {
	cli, err := c.app.Client()
	if err != nil {
		return err
	}
	avatar, err := c.app.file(c.File)
	if err != nil {
		return err
	}
	user, err := cli.UpdateAvatar(c.app.ctx, avatar)
	if err != nil {
		return err
	}
	return c.app.print(user, func(w io.Writer) {
		fmt.Fprintf(w, "avatar %s\n", user.Avatar)
	})
}
