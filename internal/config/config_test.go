package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"api_key":"sk-test","provider":"anthropic","model":"claude-sonnet-4-20250514","width":72}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, 72, cfg.Width)
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_ZeroWidthFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width":0}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Width)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	want := Config{APIKey: "sk-round", Provider: "openai", Theme: "light", Width: 80}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
