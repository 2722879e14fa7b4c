package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.followtheprocess.codes/apidoc/internal/apidoc"
	"go.followtheprocess.codes/apidoc/internal/config"
	"go.followtheprocess.codes/apidoc/internal/format"
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
)

// writeLong is the long description of the write subcommand.
//
//nolint:gochecknoglobals // Built from the format names and config constants
var writeLong = fmt.Sprintf(`
The write command reads a collection of captured API examples and writes
the JSON documentation tree: an index.json listing every resource, and one
document per example under a directory named after its resource.

Existing documents are overwritten. The format of the collection is detected
from the file extension unless '--format' is given, one of (%s).

Settings are read from %s (or the file passed with '--config'), then
from %s prefixed environment variables, command line flags take precedence
over both.
`, strings.Join(format.Names(), "|"), config.DefaultFile, config.EnvPrefix)

// write returns the write subcommand.
func write() (*cli.Command, error) {
	var options apidoc.WriteOptions

	return cli.New(
		"write",
		cli.Short("Write the JSON documentation tree for a collection"),
		cli.Long(writeLong),
		cli.Arg(&options.File, "file", "Path to the collection file"),
		cli.Flag(&options.Format, "format", 'f', "Format of the collection, detected from the extension if not set"),
		cli.Flag(&options.DocsDir, "docs-dir", 'o', "Directory to write documents to"),
		cli.Flag(&options.CurlHost, "curl-host", flag.NoShortHand, "Host to render curl commands against"),
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
			return app.Write(ctx, options)
		}),
	)
}
