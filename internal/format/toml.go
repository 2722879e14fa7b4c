package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/apidoc/internal/example"
)

// TOMLImporter is an [Importer] that imports TOML documents describing
// an [example.Collection].
type TOMLImporter struct{}

// Import implements [Importer] for [TOMLImporter] and imports the given
// TOML document into an [example.Collection].
func (t TOMLImporter) Import(r io.Reader) (example.Collection, error) {
	var collection example.Collection

	meta, err := toml.NewDecoder(r).Decode(&collection)
	if err != nil {
		return example.Collection{}, fmt.Errorf("could not decode TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}

		return example.Collection{}, fmt.Errorf("unknown keys in TOML: %s", strings.Join(keys, ", "))
	}

	return collection, nil
}
