// Package config loads runtime configuration for the storefront client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file (see parseFile) selected via flags: -c or -config.
//     Files ending in .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string        base URL of the REST API
//	-s string        path of the SQLite session store
//	-l string        listen address of the web UI
//	-v string        log level (debug, info, warn, error)
//	-logout-on-401   drop the session when the backend rejects the token
//
// # File schema
//
// Keys left out of the file keep their previous value:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "store_path": "storefront.db",
//	  "listen_addr": "127.0.0.1:8090",
//	  "log_level": "info",
//	  "logout_on_401": false
//	}
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
