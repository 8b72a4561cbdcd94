package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig("testdata/server.yaml")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
	assert.Equal(t, "../../data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://thaytai.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("THAYTAI_ADDR", ":7000")
	t.Setenv("THAYTAI_CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig("testdata/server.yaml")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("testdata/nope.yaml")
	assert.Error(t, err)
}
