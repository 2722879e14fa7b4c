package apidoc

import (
	"context"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/apidoc/internal/config"
	"go.followtheprocess.codes/apidoc/internal/doc"
)

// IndexOptions are the options passed to the index subcommand.
type IndexOptions struct {
	// File is the path to the collection file.
	File string

	// Format is the name of the collection's format, detected from
	// the file extension if empty.
	Format string

	// ConfigFile is the config file to load.
	ConfigFile string

	// KeepSourceOrder keeps examples in the order they were captured.
	KeepSourceOrder bool

	// Debug enables debug logging.
	Debug bool
}

// Index implements the index subcommand, printing the resources and examples
// that would be written, without writing anything.
func (a App) Index(ctx context.Context, options IndexOptions) error {
	logger := a.logger.Prefixed("index").With(slog.String("file", options.File))

	cfg, err := a.config(options.ConfigFile, config.Config{KeepSourceOrder: options.KeepSourceOrder})
	if err != nil {
		return err
	}

	collection, err := a.load(logger, options.File, options.Format)
	if err != nil {
		return err
	}

	if err := collection.Validate(); err != nil {
		return fmt.Errorf("invalid collection %s: %w", options.File, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	examples := doc.NewExamples(collection.Examples, doc.Options{})
	index := doc.NewIndex(examples, doc.ResourceSectioner{KeepSourceOrder: cfg.KeepSourceOrder})

	logger.Debug("Built index", slog.Int("resources", len(index.Resources)))

	for _, resource := range index.Resources {
		fmt.Fprintln(a.stdout, heading.Text(resource.Name))

		for _, example := range resource.Examples {
			fmt.Fprintf(a.stdout, "  %s %s\n", example.Description, dimmed.Text(example.Link))
		}
	}

	return nil
}
