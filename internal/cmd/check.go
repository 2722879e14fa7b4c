package cmd

import (
	"context"

	"go.followtheprocess.codes/apidoc/internal/apidoc"
	"go.followtheprocess.codes/cli"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a collection file, then this file alone is checked
for validity.

If it is a directory, this directory is scanned recursively for all
files with a '.json', '.yaml', '.yml' or '.toml' extension and any matching
files will be validated.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options apidoc.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check collection files for invalid examples"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(&options.Format, "format", 'f', "Format of the collections, detected from the extension if not set"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := apidoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
