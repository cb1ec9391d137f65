package cli

import (
	"context"
	"io"

	"github.com/jessevdk/go-flags"
	"github.com/viant/afs"
)

// Run parses args and executes the selected command
func Run(ctx context.Context, args []string, out io.Writer) error {
	app := &App{ctx: ctx, out: out, fs: afs.New()}
	options := newOptions(app)
	app.options = options
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "taskctl"
	_, err := parser.ParseArgs(args)
	if app.logger != nil {
		_ = app.logger.Sync()
	}
	return err
}
