package cli

import (
	"github.com/viant/taskmgr/internal/config"
)

// Options defines global flags and the command tree
type Options struct {
	Config   string `short:"c" long:"config" description:"config file, defaults to $TASKCTL_CONFIG or ~/.taskctl/config.yaml"`
	URL      string `short:"u" long:"url" description:"backend API base URL"`
	Store    string `long:"store" description:"credential store type" choice:"memory" choice:"file" choice:"secure" choice:"redis" choice:"ssm"`
	StoreURL string `long:"store-url" description:"credential file URL"`
	JSON     bool   `long:"json" description:"print JSON output"`
	Verbose  bool   `short:"v" long:"verbose" description:"debug logging"`

	Login    LoginCommand    `command:"login" description:"log in and store credentials"`
	Register RegisterCommand `command:"register" description:"create an account"`
	Logout   LogoutCommand   `command:"logout" description:"log out and clear credentials"`
	WhoAmI   WhoAmICommand   `command:"whoami" description:"show the current user"`
	Task     TaskCommand     `command:"task" description:"manage tasks"`
	Profile  ProfileCommand  `command:"profile" description:"manage your profile"`
	Admin    AdminCommand    `command:"admin" description:"moderate users"`
}

func (o *Options) apply(cfg *config.Config) {
	if o.URL != "" {
		cfg.BaseURL = o.URL
	}
	if o.Store != "" {
		cfg.Store.Type = o.Store
	}
	if o.StoreURL != "" {
		cfg.Store.URL = o.StoreURL
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}
}

func newOptions(app *App) *Options {
	ret := &Options{}
	ret.Login.app = app
	ret.Register.app = app
	ret.Logout.app = app
	ret.WhoAmI.app = app
	ret.Task.List.app = app
	ret.Task.Create.app = app
	ret.Task.Update.app = app
	ret.Task.Delete.app = app
	ret.Profile.Update.app = app
	ret.Profile.Password.app = app
	ret.Profile.Avatar.app = app
	ret.Admin.Users.app = app
	ret.Admin.Block.app = app
	ret.Admin.Unblock.app = app
	return ret
}
