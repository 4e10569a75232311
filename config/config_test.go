package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://sinople.org/ontology#", cfg.Namespaces["sn"])
	assert.Contains(t, cfg.Namespaces, "rdf")
	assert.Contains(t, cfg.Namespaces, "rdfs")
	assert.Contains(t, cfg.Namespaces, "owl")
	assert.Contains(t, cfg.Namespaces, "xsd")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `namespaces:
  ex: "https://example.org/vocab#"
  sn: "https://sinople.org/ontology#"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, "https://example.org/vocab#", cfg.Namespaces["ex"])
	assert.Equal(t, "https://sinople.org/ontology#", cfg.Namespaces["sn"])
}

func TestLoadFromFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("namespaces: [not a map"), 0o644))

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})

	t.Run("invalid namespace IRI", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad-iri.yaml")
		require.NoError(t, os.WriteFile(path, []byte("namespaces:\n  ex: \"not-absolute\"\n"), 0o644))

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}

func TestMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{
		Namespaces: map[string]string{
			"ex": "https://example.org/vocab#",
			"sn": "https://override.example/ontology#",
		},
	})

	// New prefixes are added, conflicting ones are overridden, and the
	// untouched defaults survive.
	assert.Equal(t, "https://example.org/vocab#", cfg.Namespaces["ex"])
	assert.Equal(t, "https://override.example/ontology#", cfg.Namespaces["sn"])
	assert.Contains(t, cfg.Namespaces, "rdfs")
}

func TestMergeNil(t *testing.T) {
	cfg := DefaultConfig()
	before := len(cfg.Namespaces)

	cfg.Merge(nil)

	assert.Len(t, cfg.Namespaces, before)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Namespaces: map[string]string{"ex": "https://example.org/#"}},
		},
		{
			name:    "prefix with colon",
			cfg:     Config{Namespaces: map[string]string{"e:x": "https://example.org/#"}},
			wantErr: true,
		},
		{
			name:    "empty IRI",
			cfg:     Config{Namespaces: map[string]string{"ex": ""}},
			wantErr: true,
		},
		{
			name:    "relative IRI",
			cfg:     Config{Namespaces: map[string]string{"ex": "vocab"}},
			wantErr: true,
		},
		{
			name: "empty config",
			cfg:  Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
