package format

import (
	"encoding/json"
	"fmt"
	"io"

	"go.followtheprocess.codes/apidoc/internal/example"
)

// JSONImporter is an [Importer] that imports JSON documents describing
// an [example.Collection].
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter] and imports the given
// JSON document into an [example.Collection].
func (j JSONImporter) Import(r io.Reader) (example.Collection, error) {
	var collection example.Collection

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&collection); err != nil {
		return example.Collection{}, fmt.Errorf("could not decode JSON: %w", err)
	}

	return collection, nil
}
