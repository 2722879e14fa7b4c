// Package apidoc implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package apidoc

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"go.followtheprocess.codes/apidoc/internal/example"
	"go.followtheprocess.codes/apidoc/internal/format"
	"go.followtheprocess.codes/hue"
	"go.followtheprocess.codes/log"
)

// Styles.
const (
	// heading is the style used for resource names in the index listing.
	heading = hue.Bold

	// dimmed is the style used for informational content like example links.
	dimmed = hue.BrightBlack | hue.Italic
)

// App represents the apidoc program.
type App struct {
	fs     afero.Fs    // Filesystem collections are read from and documents written to
	stdout io.Writer   // Normal program output is written here
	stderr io.Writer   // Logs and errors are written here
	logger *log.Logger // The logger for the application
}

// New returns a new [App] operating on the real filesystem.
func New(debug bool, stdout, stderr io.Writer) App {
	return NewWithFs(afero.NewOsFs(), debug, stdout, stderr)
}

// NewWithFs returns a new [App] operating on fs.
func NewWithFs(fs afero.Fs, debug bool, stdout, stderr io.Writer) App {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level), log.Prefix("apidoc"))

	return App{
		fs:     fs,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// load imports the collection file at path, using the named format or detecting
// it from the file extension if name is empty.
func (a App) load(logger *log.Logger, path, name string) (example.Collection, error) {
	if name == "" {
		detected, err := format.Detect(path)
		if err != nil {
			return example.Collection{}, err
		}

		name = detected
	}

	importer, err := format.Lookup(name)
	if err != nil {
		return example.Collection{}, err
	}

	file, err := a.fs.Open(path)
	if err != nil {
		return example.Collection{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	collection, err := importer.Import(file)
	if err != nil {
		return example.Collection{}, fmt.Errorf("could not import %s: %w", path, err)
	}

	logger.Debug(
		"Imported collection",
		slog.String("file", path),
		slog.String("format", name),
		slog.Int("examples", len(collection.Examples)),
	)

	return collection, nil
}
