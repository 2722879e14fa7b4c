// Package cmd implements apidoc's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the apidoc CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"apidoc",
		cli.Short("Write JSON API documentation from captured API examples"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Write the documentation tree for a collection", "apidoc write ./examples.json"),
		cli.Example(
			"Write to a specific directory, rendering curl commands against a host",
			"apidoc write ./examples.yaml --docs-dir ./public/api --curl-host https://api.example.com",
		),
		cli.Example("Document traffic recorded in a go-vcr cassette", "apidoc write ./fixtures/users.yaml --format cassette"),
		cli.Example("Check every collection under a directory (recursively)", "apidoc check ./examples"),
		cli.Example("Show what would be written", "apidoc index ./examples.json"),
		cli.Allow(cli.NoArgs()),
		cli.SubCommands(write, check, index),
	)
}
