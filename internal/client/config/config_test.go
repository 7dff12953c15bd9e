package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8080/api", c.APIBaseURL)
	assert.Equal(t, "storefront.db", c.StorePath)
	assert.Equal(t, "127.0.0.1:8090", c.ListenAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.LogoutOnUnauthorized)
	assert.Empty(t, c.StoreKey)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, "storefront.db", cfg.StorePath)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "api_base_url: http://file:1/api\nstore_path: file.db\n")
	os.Args = []string{"testbin", "-c", path, "-a", "http://flag:2/api"}

	cfg := LoadConfig()

	assert.Equal(t, "http://flag:2/api", cfg.APIBaseURL)
	assert.Equal(t, "file.db", cfg.StorePath)
	assert.Equal(t, "127.0.0.1:8090", cfg.ListenAddr)
}
