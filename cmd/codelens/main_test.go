package main

import (
	"testing"

	"codelens/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want confirmAction
	}{
		{"y", confirmYes},
		{"Y", confirmYes},
		{"yes", confirmYes},
		{" yes \n", confirmYes},
		{"n", confirmNo},
		{"no", confirmNo},
		{"q", confirmNo},
		{"e", confirmEdit},
		{"Edit", confirmEdit},
		{"", confirmUnknown},
		{"maybe", confirmUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseConfirm(tt.in), "input %q", tt.in)
	}
}

func TestApplyConfigValue(t *testing.T) {
	cfg := config.DefaultConfig()

	require.NoError(t, applyConfigValue(&cfg, "api_key", "sk-test-123"))
	require.NoError(t, applyConfigValue(&cfg, "provider", "openai"))
	require.NoError(t, applyConfigValue(&cfg, "model", "gpt-4o"))
	require.NoError(t, applyConfigValue(&cfg, "theme", "light"))
	require.NoError(t, applyConfigValue(&cfg, "width", "80"))

	assert.Equal(t, "sk-test-123", cfg.APIKey)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 80, cfg.Width)
}

func TestApplyConfigValue_Invalid(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Error(t, applyConfigValue(&cfg, "provider", "gemini"))
	assert.Error(t, applyConfigValue(&cfg, "theme", "solarized"))
	assert.Error(t, applyConfigValue(&cfg, "width", "zero"))
	assert.Error(t, applyConfigValue(&cfg, "width", "-1"))
	assert.Error(t, applyConfigValue(&cfg, "nope", "x"))
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(unset)", maskKey(""))
	assert.Equal(t, "****", maskKey("abcd"))
	assert.Equal(t, "*************3456", maskKey("sk-test-4567-3456"))
	assert.NotContains(t, maskKey("sk-secret-value-9876"), "secret")
}
