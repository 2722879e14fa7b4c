package apidoc

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
	"go.followtheprocess.codes/apidoc/internal/format"
	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Format is the name of the collection format, detected from each
	// file's extension if empty.
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
func (a App) Check(ctx context.Context, options CheckOptions) error {
	logger := a.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	info, err := a.fs.Stat(options.Path)
	if err != nil {
		return fmt.Errorf("could not get path info: %w", err)
	}

	var paths []string

	if info.IsDir() {
		logger.Debug("Path is a directory")

		err = afero.Walk(a.fs, options.Path, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.IsDir() && format.IsCollection(path) {
				paths = append(paths, path)
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("could not walk %s: %w", options.Path, err)
		}
	} else {
		logger.Debug("Path is a file")

		paths = []string{options.Path}
	}

	logger.Debug("Checking collection files given by path", slog.Int("number", len(paths)))

	group, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return a.checkFile(path, options.Format)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(a.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile imports and validates a single collection file.
func (a App) checkFile(path, name string) error {
	logger := a.logger.Prefixed("check")

	collection, err := a.load(logger, path, name)
	if err != nil {
		return err
	}

	if err := collection.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
