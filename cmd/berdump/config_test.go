package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "berdump.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    config
		wantErr string
	}{
		{
			name: "all keys",
			content: `
max_depth = 5
input = " HEX "
reencode = true
log_level = "debug"
`,
			want: config{MaxDepth: 5, Input: inputHex, Reencode: true, LogLevel: "debug"},
		},
		{
			name:    "partial keeps defaults",
			content: `reencode = true`,
			want:    config{MaxDepth: 50, Input: inputRaw, Reencode: true, LogLevel: "warn"},
		},
		{
			name:    "empty file",
			content: ``,
			want:    defaultConfig(),
		},
		{
			name:    "unknown key",
			content: `depth = 3`,
			wantErr: `unknown key "depth"`,
		},
		{
			name:    "malformed",
			content: `max_depth = `,
			wantErr: "load berdump config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			err := loadConfig(writeConfig(t, tt.content), &cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := defaultConfig()
	err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config) {}},
		{name: "zero depth", mutate: func(c *config) { c.MaxDepth = 0 }, wantErr: "max_depth must be positive"},
		{name: "unknown input", mutate: func(c *config) { c.Input = "base64" }, wantErr: `input must be "raw" or "hex"`},
		{name: "unknown level", mutate: func(c *config) { c.LogLevel = "loud" }, wantErr: "parse log_level"},
		{name: "upper case level", mutate: func(c *config) { c.LogLevel = "DEBUG" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, " debug ")
	cfg := defaultConfig()
	applyEnvOverrides(&cfg)
	assert.Equal(t, "debug", cfg.LogLevel)
}
