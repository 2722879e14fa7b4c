package apidoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/apidoc/internal/config"
	"go.followtheprocess.codes/apidoc/internal/writer"
	"go.followtheprocess.codes/msg"
)

// WriteOptions are the options passed to the write subcommand.
type WriteOptions struct {
	// File is the path to the collection file to document.
	File string

	// Format is the name of the collection's format, detected from
	// the file extension if empty.
	Format string

	// ConfigFile is the config file to load, if empty [config.DefaultFile]
	// is used if it exists.
	ConfigFile string

	// DocsDir overrides the configured docs directory.
	DocsDir string

	// CurlHost overrides the configured curl host.
	CurlHost string

	// KeepSourceOrder keeps examples in the order they were captured.
	KeepSourceOrder bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the WriteOptions is valid, returning an error
// if it's not.
//
// nil means the options are valid.
func (w WriteOptions) Validate() error {
	if w.File == "" {
		return errors.New("file cannot be empty")
	}

	return nil
}

// Write implements the write subcommand.
func (a App) Write(ctx context.Context, options WriteOptions) error {
	logger := a.logger.Prefixed("write").With(slog.String("file", options.File))

	if err := options.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	cfg, err := a.config(options.ConfigFile, config.Config{
		DocsDir:         options.DocsDir,
		CurlHost:        options.CurlHost,
		KeepSourceOrder: options.KeepSourceOrder,
	})
	if err != nil {
		return err
	}

	logger.Debug("Write configuration", slog.String("config", fmt.Sprintf("%+v", cfg)))

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

	written, err := writer.New(a.fs, cfg, a.logger).Write(collection.Examples)
	if err != nil {
		return err
	}

	// The index is always the first file written
	msg.Fsuccess(a.stdout, "Wrote %d documents to %s", len(written)-1, cfg.DocsDir)

	return nil
}

// config loads the config from file, applies flags on top and validates the result.
func (a App) config(file string, flags config.Config) (config.Config, error) {
	cfg, err := config.Load(a.fs, file)
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Override(flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
