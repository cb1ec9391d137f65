package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/viant/taskmgr/client"
	"github.com/viant/taskmgr/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err := cli.Run(ctx, os.Args[1:], os.Stdout)
	if err == nil {
		return
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(os.Stdout, err)
		return
	}
	if client.IsReauthenticationRequired(err) {
		fmt.Fprintln(os.Stderr, "session expired, run: taskctl login")
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
