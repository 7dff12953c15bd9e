package config

// Config holds runtime settings shared by the storefront CLI and web UI.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, including the /api prefix.
//   - StorePath: SQLite file holding the session token.
//   - ListenAddr: host:port the web UI listens on (web front end only).
//   - LogLevel: debug, info, warn or error.
//   - LogoutOnUnauthorized: drop the session when an authorized call
//     fails with 401/403 instead of only showing the message.
//   - StoreKey: passphrase sealing the saved token; empty stores it as is.
type Config struct {
	APIBaseURL           string
	StorePath            string
	ListenAddr           string
	LogLevel             string
	LogoutOnUnauthorized bool
	StoreKey             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.StorePath = "storefront.db"
	c.ListenAddr = "127.0.0.1:8090"
	c.LogLevel = "info"
	c.LogoutOnUnauthorized = false
	c.StoreKey = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
