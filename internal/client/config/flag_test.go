package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://127.0.0.1:9090/api", "-s", "x.db", "-l", ":7000", "-v", "debug", "-logout-on-401", "-k", "pass"},
			expected: &Config{
				APIBaseURL:           "http://127.0.0.1:9090/api",
				StorePath:            "x.db",
				ListenAddr:           ":7000",
				LogLevel:             "debug",
				LogoutOnUnauthorized: true,
				StoreKey:             "pass",
			},
		},
		{
			name:     "config flag is ignored here",
			args:     []string{"cmd", "-c", "conf.json", "-v", "warn"},
			expected: &Config{LogLevel: "warn"},
		},
		{
			name:        "bad bool value",
			args:        []string{"cmd", "-logout-on-401=maybe"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
