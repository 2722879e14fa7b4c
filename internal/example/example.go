// Package example provides the Collection, Record and Interaction types, the concrete
// data structures describing API examples captured while running a test suite.
//
// A Record is one documented example: a resource, the route exercised and every
// request/response pair made while the example ran. Records are read only inputs
// to the documentation writers, nothing in this module modifies them.
package example

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"go.followtheprocess.codes/apidoc/internal/naming"
)

// GroupKey is the metadata key holding the documentation grouping tag of a Record.
const GroupKey = "document"

// methods are the HTTP methods a Record may document.
//
//nolint:gochecknoglobals // Effectively a constant
var methods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}

// Collection is a set of examples captured from a single test run.
type Collection struct {
	// Optional name of the collection, typically the API name
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The captured examples in the order they ran
	Examples []Record `json:"examples" toml:"examples" yaml:"examples"`
}

// Validate reports whether every record in the collection is valid, the
// returned error joins the problems found with each invalid record.
func (c Collection) Validate() error {
	errs := make([]error, 0, len(c.Examples))

	for i, record := range c.Examples {
		if err := record.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("example %d (%q): %w", i, record.Description, err))
		}
	}

	return errors.Join(errs...)
}

// Record is a single documented example.
type Record struct {
	// Arbitrary metadata attached to the example, the value under GroupKey
	// is the example's documentation group
	Metadata map[string]any `json:"metadata,omitempty" toml:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Name of the resource the example documents e.g. "Users"
	ResourceName string `json:"resource_name" toml:"resource_name" yaml:"resource_name"`

	// HTTP method of the route under test
	HTTPMethod string `json:"http_method" toml:"http_method" yaml:"http_method"`

	// The route under test e.g. "/users/:id"
	Route string `json:"route" toml:"route" yaml:"route"`

	// Short free text description e.g. "Getting a user"
	Description string `json:"description" toml:"description" yaml:"description"`

	// Optional longer explanation of the example
	Explanation string `json:"explanation,omitempty" toml:"explanation,omitempty" yaml:"explanation,omitempty"`

	// Documented parameters, nil if the example documents none
	Parameters []Parameter `json:"parameters,omitempty" toml:"parameters,omitempty" yaml:"parameters,omitempty"`

	// The request/response pairs made during the example, in order
	Requests []Interaction `json:"requests,omitempty" toml:"requests,omitempty" yaml:"requests,omitempty"`
}

// Group returns the documentation grouping tag from the record's metadata, nil if
// there isn't one.
func (r Record) Group() any {
	return r.Metadata[GroupKey]
}

// Validate reports whether the record is valid, returning a non-nil error
// if it's not.
func (r Record) Validate() error {
	switch {
	case strings.TrimSpace(r.ResourceName) == "":
		return errors.New("resource_name cannot be empty")
	case !naming.IsLocal(naming.Dirname(r.ResourceName)):
		return fmt.Errorf("resource_name %q does not name a directory inside the docs dir", r.ResourceName)
	case strings.TrimSpace(r.Description) == "":
		return errors.New("description cannot be empty")
	case naming.Basename(r.Description) == "":
		return fmt.Errorf("description %q has no letters to derive a filename from", r.Description)
	case !slices.Contains(methods, strings.ToUpper(r.HTTPMethod)):
		return fmt.Errorf("invalid http_method %q", r.HTTPMethod)
	default:
		return nil
	}
}

// Parameter is a documented request parameter.
type Parameter struct {
	// Name of the parameter
	Name string `json:"name" toml:"name" yaml:"name"`

	// Optional description of the parameter
	Description string `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`

	// Optional type of the parameter e.g. "string"
	Type string `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`

	// Optional scope the parameter is nested under e.g. "user" for user[name]
	Scope string `json:"scope,omitempty" toml:"scope,omitempty" yaml:"scope,omitempty"`

	// Whether the parameter is required
	Required bool `json:"required,omitempty" toml:"required,omitempty" yaml:"required,omitempty"`
}
