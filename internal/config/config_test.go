package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/digest"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, curves.NameSecp256k1, cfg.Curve)
	assert.Equal(t, digest.SHA256, cfg.Hash)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "info", cfg.Log.Level)

	params, err := cfg.Params()
	require.NoError(t, err)
	assert.True(t, curves.IsSecp256k1(params))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecctl.yaml")
	content := []byte(`curve: toy9739
hash: SHA1
workers: 3
timeout: 1m30s
output: yaml
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, curves.NameToy9739, cfg.Curve)
	assert.Equal(t, digest.SHA1, cfg.Hash)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600))

	t.Setenv("ECCTL_LOG_LEVEL", "error")
	t.Setenv("ECCTL_CURVE", "toy9739")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, curves.NameToy9739, cfg.Curve)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Curve: "secp256k1", Hash: digest.SHA256, Output: OutputText, Log: Log{Level: "info"}}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"curve", func(c *Config) { c.Curve = "p256" }},
		{"hash", func(c *Config) { c.Hash = "md5" }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"output", func(c *Config) { c.Output = "json" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
