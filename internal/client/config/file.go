package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// fileConfig is a DTO used exclusively for file unmarshalling. Pointer
// fields tell "absent" apart from zero values so a partial file only
// overrides what it names.
type fileConfig struct {
	APIBaseURL           *string `json:"api_base_url" yaml:"api_base_url"`
	StorePath            *string `json:"store_path" yaml:"store_path"`
	ListenAddr           *string `json:"listen_addr" yaml:"listen_addr"`
	LogLevel             *string `json:"log_level" yaml:"log_level"`
	LogoutOnUnauthorized *bool   `json:"logout_on_401" yaml:"logout_on_401"`
	StoreKey             *string `json:"store_key" yaml:"store_key"`
}

// parseFile overlays Config with values loaded from the file named by
// -c/-config. Read or decode errors panic; intended usage is
// defaults -> parseFile -> parseFlags.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	if err := unmarshalFile(path, data, &fc); err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func unmarshalFile(path string, data []byte, fc *fileConfig) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, fc)
	default:
		return json.Unmarshal(data, fc)
	}
}

func (fc *fileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.StorePath != nil {
		cfg.StorePath = *fc.StorePath
	}
	if fc.ListenAddr != nil {
		cfg.ListenAddr = *fc.ListenAddr
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogoutOnUnauthorized != nil {
		cfg.LogoutOnUnauthorized = *fc.LogoutOnUnauthorized
	}
	if fc.StoreKey != nil {
		cfg.StoreKey = *fc.StoreKey
	}
}
