package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: JSON\nstrict: true\ninclude-unexported: true\n"), 0o644))

	v, err := New(path)
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.IncludeUnexported)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_DiscoveredFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".paramdoc.yaml"), []byte("log-level: debug\n"), 0o644))
	t.Chdir(dir)

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PARAMDOC_STRICT", "true")
	t.Setenv("PARAMDOC_FORMAT", "yaml")

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	t.Chdir(t.TempDir())

	v, err := New("")
	require.NoError(t, err)
	v.Set(KeyFormat, "xml")

	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestNew_MissingExplicitFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
