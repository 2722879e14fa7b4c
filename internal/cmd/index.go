package cmd

import (
	"context"

	"go.followtheprocess.codes/apidoc/internal/apidoc"
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
)

// index returns the index subcommand.
func index() (*cli.Command, error) {
	var options apidoc.IndexOptions

	return cli.New(
		"index",
		cli.Short("Show the resources and examples a collection documents"),
		cli.Arg(&options.File, "file", "Path to the collection file"),
		cli.Flag(&options.Format, "format", 'f', "Format of the collection, detected from the extension if not set"),
		cli.Flag(
			&options.KeepSourceOrder,
			"keep-source-order",
			flag.NoShortHand,
			"Keep resources and examples in the order they were captured",
		),
		cli.Flag(&options.ConfigFile, "config", 'c', "Path to the config file"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := apidoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.Index(ctx, options)
		}),
	)
}
