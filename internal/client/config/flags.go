package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx, to avoid interference with -c/-config and other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgsWithBools(os.Args[1:],
		[]string{"-a", "-s", "-l", "-v", "-k"},
		[]string{"-logout-on-401"},
	)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the REST API")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the session store")
	fs.StringVar(&cfg.ListenAddr, "l", cfg.ListenAddr, "web UI listen address")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.StoreKey, "k", cfg.StoreKey, "passphrase for sealing the saved token")
	fs.BoolVar(&cfg.LogoutOnUnauthorized, "logout-on-401", cfg.LogoutOnUnauthorized, "log out when the backend rejects the token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
