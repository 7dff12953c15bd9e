package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/cli"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/tokenstore"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := tokenstore.Open(ctx, cfg.StorePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer store.Close()

	var tokens tokenstore.Store = store
	if cfg.StoreKey != "" {
		tokens = tokenstore.NewSealedStore(store, cfg.StoreKey)
	}

	renderer, err := view.NewTextRenderer()
	if err != nil {
		log.Fatalf("%v", err)
	}

	sess := session.New(tokens, logger)
	client := api.NewHTTPClient(cfg.APIBaseURL, sess, logger)
	sh := ui.New(client, sess, logger,
		ui.WithLogoutOnUnauthorized(cfg.LogoutOnUnauthorized),
		ui.WithProgress(func(msg string) { fmt.Println(msg) }),
	)

	app := cli.NewApp(sh, tokens, renderer, os.Stdin, os.Stdout, logger)
	app.Run(ctx)

}
