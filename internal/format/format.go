// Package format provides mechanisms for importing captured API examples from
// external formats.
//
// Notably, the package provides the [Importer] interface for doing this in a
// format-agnostic way along with the built in JSON, YAML, TOML and go-vcr cassette
// importers.
package format

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"go.followtheprocess.codes/apidoc/internal/example"
)

// Importer is the interface defining a mechanism for importing external formats
// into an [example.Collection].
type Importer interface {
	// Import imports the data from the external format into an [example.Collection].
	Import(r io.Reader) (example.Collection, error)
}

// Names of the built in formats.
const (
	JSON     = "json"
	YAML     = "yaml"
	TOML     = "toml"
	Cassette = "cassette"
)

// Names returns the names of every built in format.
func Names() []string {
	return []string{JSON, YAML, TOML, Cassette}
}

// Lookup returns the [Importer] for the named format.
func Lookup(name string) (Importer, error) {
	switch strings.ToLower(name) {
	case JSON:
		return JSONImporter{}, nil
	case YAML, "yml":
		return YAMLImporter{}, nil
	case TOML:
		return TOMLImporter{}, nil
	case Cassette:
		return CassetteImporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, allowed values are %s", name, strings.Join(Names(), ", "))
	}
}

// Detect returns the name of the format of the file at path, based on its extension.
func Detect(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("could not detect format of %s from extension %q, pass --format explicitly", path, ext)
	}
}

// IsCollection reports whether path looks like an importable collection file.
func IsCollection(path string) bool {
	return slices.Contains([]string{".json", ".yaml", ".yml", ".toml"}, strings.ToLower(filepath.Ext(path)))
}
