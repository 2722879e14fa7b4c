// Package config loads the documentation writer configuration.
//
// Values are layered, later sources override earlier ones: built in defaults, an
// optional YAML config file then APIDOC_ prefixed environment variables. Command line
// flags are applied on top by the caller with [Config.Override].
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// Defaults.
const (
	// DefaultFile is the config file loaded when no explicit path is given.
	DefaultFile = ".apidoc.yaml"

	// DefaultDocsDir is the default directory documents are written to.
	DefaultDocsDir = "docs"

	// EnvPrefix is the prefix of environment variables overriding config values.
	EnvPrefix = "APIDOC_"
)

// Config is the configuration for writing documentation.
type Config struct {
	// DocsDir is the directory documents are written to, created if needed.
	DocsDir string `koanf:"docs_dir"`

	// CurlHost is the host curl commands are rendered against, if empty
	// curl commands are left out of the documents.
	CurlHost string `koanf:"curl_host"`

	// CurlHeadersToFilter are header names left out of rendered curl commands.
	CurlHeadersToFilter []string `koanf:"curl_headers_to_filter"`

	// KeepSourceOrder keeps resources and examples in the order they were
	// captured rather than sorting them by name and description.
	KeepSourceOrder bool `koanf:"keep_source_order"`
}

// Load loads the [Config].
//
// path is the YAML config file to read from fsys, if empty [DefaultFile] is tried. A
// missing default file is fine, a missing explicitly requested file is an error.
func Load(fsys afero.Fs, path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Set("docs_dir", DefaultDocsDir); err != nil {
		return Config{}, fmt.Errorf("could not set default docs_dir: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	contents, err := afero.ReadFile(fsys, path)
	switch {
	case err == nil:
		if err := k.Load(rawbytes.Provider(contents), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("could not load config file %s: %w", path, err)
	}

	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("could not load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}

	return cfg, nil
}

// Override returns a copy of c with every non-zero field of other applied on top.
func (c Config) Override(other Config) Config {
	if other.DocsDir != "" {
		c.DocsDir = other.DocsDir
	}

	if other.CurlHost != "" {
		c.CurlHost = other.CurlHost
	}

	if len(other.CurlHeadersToFilter) != 0 {
		c.CurlHeadersToFilter = other.CurlHeadersToFilter
	}

	if other.KeepSourceOrder {
		c.KeepSourceOrder = true
	}

	return c
}

// Validate reports whether the Config is valid, returning a non-nil
// error if it's not.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DocsDir) == "" {
		return errors.New("docs_dir cannot be empty")
	}

	if c.CurlHost == "" {
		return nil
	}

	host, err := url.Parse(c.CurlHost)
	if err != nil {
		return fmt.Errorf("invalid curl_host %q: %w", c.CurlHost, err)
	}

	if host.Scheme == "" || host.Host == "" {
		return fmt.Errorf("invalid curl_host %q: must include a scheme and host e.g. http://localhost:3000", c.CurlHost)
	}

	return nil
}
