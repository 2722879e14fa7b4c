package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
	"go.followtheprocess.codes/apidoc/internal/config"
	"go.followtheprocess.codes/test"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(afero.NewOsFs(), "")
	test.Ok(t, err)

	test.Equal(t, cfg.DocsDir, config.DefaultDocsDir)
	test.Equal(t, cfg.CurlHost, "")
	test.Equal(t, cfg.KeepSourceOrder, false)
	test.Equal(t, len(cfg.CurlHeadersToFilter), 0)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidoc.yaml")

	contents := `docs_dir: public/api
curl_host: http://localhost:3000
curl_headers_to_filter:
  - Host
  - Cookie
keep_source_order: true
`
	test.Ok(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := config.Load(afero.NewOsFs(), path)
	test.Ok(t, err)

	test.Equal(t, cfg.DocsDir, "public/api")
	test.Equal(t, cfg.CurlHost, "http://localhost:3000")
	test.Equal(t, cfg.KeepSourceOrder, true)
	test.EqualFunc(t, cfg.CurlHeadersToFilter, []string{"Host", "Cookie"}, slices.Equal)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidoc.yaml")
	test.Ok(t, os.WriteFile(path, []byte("docs_dir: from/file\ncurl_host: http://file:3000\n"), 0o644))

	t.Setenv("APIDOC_DOCS_DIR", "from/env")
	t.Setenv("APIDOC_KEEP_SOURCE_ORDER", "true")

	cfg, err := config.Load(afero.NewOsFs(), path)
	test.Ok(t, err)

	test.Equal(t, cfg.DocsDir, "from/env")
	test.Equal(t, cfg.CurlHost, "http://file:3000")
	test.Equal(t, cfg.KeepSourceOrder, true)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(afero.NewOsFs(), filepath.Join(t.TempDir(), "missing.yaml"))
	test.Err(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidoc.yaml")
	test.Ok(t, os.WriteFile(path, []byte("docs_dir: [unclosed\n"), 0o644))

	_, err := config.Load(afero.NewOsFs(), path)
	test.Err(t, err)
}

func TestLoadFromFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	test.Ok(t, afero.WriteFile(fsys, config.DefaultFile, []byte("docs_dir: in/memory\nkeep_source_order: true\n"), 0o644))

	cfg, err := config.Load(fsys, "")
	test.Ok(t, err)

	test.Equal(t, cfg.DocsDir, "in/memory")
	test.Equal(t, cfg.KeepSourceOrder, true)
}

func TestLoadMissingDefaultFileInFs(t *testing.T) {
	// The real working directory is never consulted
	cfg, err := config.Load(afero.NewMemMapFs(), "")
	test.Ok(t, err)
	test.Equal(t, cfg.DocsDir, config.DefaultDocsDir)

	_, err = config.Load(afero.NewMemMapFs(), "explicit.yaml")
	test.Err(t, err)
}

func TestOverride(t *testing.T) {
	base := config.Config{
		DocsDir:             "docs",
		CurlHost:            "http://base:3000",
		CurlHeadersToFilter: []string{"Host"},
	}

	got := base.Override(config.Config{DocsDir: "out", KeepSourceOrder: true})

	test.Equal(t, got.DocsDir, "out")
	test.Equal(t, got.CurlHost, "http://base:3000")
	test.Equal(t, got.KeepSourceOrder, true)
	test.EqualFunc(t, got.CurlHeadersToFilter, []string{"Host"}, slices.Equal)

	// Base is unchanged
	test.Equal(t, base.DocsDir, "docs")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string        // Name of the test case
		config  config.Config // Config under test
		wantErr bool          // Whether we want an error
	}{
		{
			name:    "valid no curl",
			config:  config.Config{DocsDir: "docs"},
			wantErr: false,
		},
		{
			name:    "valid with curl",
			config:  config.Config{DocsDir: "docs", CurlHost: "https://api.example.com"},
			wantErr: false,
		},
		{
			name:    "empty docs dir",
			config:  config.Config{DocsDir: "  "},
			wantErr: true,
		},
		{
			name:    "curl host missing scheme",
			config:  config.Config{DocsDir: "docs", CurlHost: "localhost:3000/api"},
			wantErr: true,
		},
		{
			name:    "curl host unparseable",
			config:  config.Config{DocsDir: "docs", CurlHost: "http://[::1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.WantErr(t, tt.config.Validate(), tt.wantErr)
		})
	}
}
