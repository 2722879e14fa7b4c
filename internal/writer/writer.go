// Package writer persists the JSON documentation tree for a set of API examples.
//
// The tree is an index.json at the root of the docs directory and one directory per
// resource holding a document per example:
//
//	docs/
//	├── index.json
//	└── users/
//	    ├── get_a_user.json
//	    └── list_users.json
//
// Writes are not transactional, the first failure stops the write and anything
// written before it is left in place. Concurrent writes to the same directory must
// be serialised by the caller.
package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"go.followtheprocess.codes/apidoc/internal/config"
	"go.followtheprocess.codes/apidoc/internal/doc"
	"go.followtheprocess.codes/apidoc/internal/example"
	"go.followtheprocess.codes/apidoc/internal/naming"
	"go.followtheprocess.codes/log"
)

// IndexFile is the name of the index document written at the root of the docs dir.
const IndexFile = "index.json"

// Permissions.
const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Writer writes the JSON documentation tree.
type Writer struct {
	fs        afero.Fs      // Filesystem documents are written to
	logger    *log.Logger   // Logs progress and warnings
	sectioner doc.Sectioner // Groups examples in the index
	config    config.Config // Where and how to write
}

// New returns a new [Writer] writing to fs according to cfg.
//
// The index groups examples with a [doc.ResourceSectioner] honouring cfg.KeepSourceOrder,
// use [Writer.WithSectioner] to replace it.
func New(fs afero.Fs, cfg config.Config, logger *log.Logger) Writer {
	return Writer{
		fs:        fs,
		logger:    logger.Prefixed("write"),
		sectioner: doc.ResourceSectioner{KeepSourceOrder: cfg.KeepSourceOrder},
		config:    cfg,
	}
}

// WithSectioner returns a copy of the [Writer] grouping the index with sectioner.
func (w Writer) WithSectioner(sectioner doc.Sectioner) Writer {
	w.sectioner = sectioner
	return w
}

// Write writes the index and one example document per record under the configured
// docs directory, overwriting any existing files, returning the paths written in order.
//
// Directories are created as needed. The first I/O error aborts the write, as does
// a resource whose directory would not sit directly beneath the docs directory.
func (w Writer) Write(records []example.Record) ([]string, error) {
	options := doc.Options{
		CurlHost:            w.config.CurlHost,
		CurlHeadersToFilter: w.config.CurlHeadersToFilter,
	}

	examples := doc.NewExamples(records, options)

	w.logger.Debug(
		"Writing documentation",
		slog.String("dir", w.config.DocsDir),
		slog.Int("examples", len(examples)),
	)

	written := make([]string, 0, len(examples)+1)

	if err := w.fs.MkdirAll(w.config.DocsDir, dirPerms); err != nil {
		return written, fmt.Errorf("could not create %s: %w", w.config.DocsDir, err)
	}

	indexPath := filepath.Join(w.config.DocsDir, IndexFile)
	if err := w.writeJSON(indexPath, doc.NewIndex(examples, w.sectioner)); err != nil {
		return written, err
	}

	written = append(written, indexPath)

	seen := make(map[string]string, len(examples))

	for _, document := range examples {
		if !naming.IsLocal(document.Dirname) {
			return written, fmt.Errorf(
				"could not write %q: resource %q would be written outside %s",
				document.Description,
				document.Resource,
				w.config.DocsDir,
			)
		}

		dir := filepath.Join(w.config.DocsDir, document.Dirname)
		path := filepath.Join(dir, document.Filename)

		if previous, ok := seen[path]; ok {
			w.logger.Warn(
				"Examples share an output file, the later one wins",
				slog.String("path", path),
				slog.String("first", previous),
				slog.String("second", document.Description),
			)
		}

		seen[path] = document.Description

		if err := w.fs.MkdirAll(dir, dirPerms); err != nil {
			return written, fmt.Errorf("could not create %s: %w", dir, err)
		}

		if err := w.writeJSON(path, document); err != nil {
			return written, err
		}

		written = append(written, path)
	}

	w.logger.Debug("Wrote documentation", slog.Int("files", len(written)))

	return written, nil
}

// writeJSON serialises v as indented JSON to path, replacing any existing file.
func (w Writer) writeJSON(path string, v any) error {
	buf := &bytes.Buffer{}

	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("could not encode %s: %w", path, err)
	}

	if err := afero.WriteFile(w.fs, path, buf.Bytes(), filePerms); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	w.logger.Debug("Wrote document", slog.String("path", path))

	return nil
}
