package format

import (
	"errors"
	"fmt"
	"io"

	"go.followtheprocess.codes/apidoc/internal/example"
	"go.yaml.in/yaml/v4"
)

// YAMLImporter is an [Importer] that imports YAML documents describing
// an [example.Collection].
type YAMLImporter struct{}

// Import implements [Importer] for [YAMLImporter] and imports the given
// YAML document into an [example.Collection].
func (y YAMLImporter) Import(r io.Reader) (example.Collection, error) {
	var collection example.Collection

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&collection); err != nil && !errors.Is(err, io.EOF) {
		return example.Collection{}, fmt.Errorf("could not decode YAML: %w", err)
	}

	return collection, nil
}
