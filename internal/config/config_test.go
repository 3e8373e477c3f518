package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.DefaultRegion)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.CacheTTL())
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
default_region: US-WEST-2
cache_ttl_seconds: 120
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "us-west-2", cfg.DefaultRegion)
	assert.Equal(t, 120, cfg.CacheTTLSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "us-east-1", cfg.DefaultRegion)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadUnknownRegionFails(t *testing.T) {
	path := writeConfig(t, "default_region: mars-1\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown default_region")
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := writeConfig(t, "default_region: [broken\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}
