package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMapping_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadMapping(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMapping, cfg)
}

func TestLoadMapping_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	content := `version: 2
sheet: Register
columns:
  - field: serial_number
    header: Serial
  - field: status
    header: State
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
	assert.Equal(t, "Register", cfg.Sheet)
	require.Len(t, cfg.Columns, 2)
	assert.Equal(t, Column{Field: "serial_number", Header: "Serial"}, cfg.Columns[0])
	assert.Equal(t, Column{Field: "status", Header: "State"}, cfg.Columns[1])
}

func TestLoadMapping_FillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o644))

	cfg, err := LoadMapping(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultMapping.Sheet, cfg.Sheet)
	assert.Equal(t, DefaultMapping.Columns, cfg.Columns)
}

func TestLoadMapping_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [unclosed"), 0o644))

	_, err := LoadMapping(path)
	require.Error(t, err)
}
