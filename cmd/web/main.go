package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/tokenstore"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/client/web"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
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

	renderer, err := view.NewHTMLRenderer()
	if err != nil {
		log.Fatalf("%v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sess := session.New(tokens, logger)
	client := api.NewHTTPClient(cfg.APIBaseURL, sess, logger, api.WithMetrics(api.NewMetrics(reg)))
	sh := ui.New(client, sess, logger, ui.WithLogoutOnUnauthorized(cfg.LogoutOnUnauthorized))

	srv := web.NewServer(cfg.ListenAddr, sh, renderer, reg, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Error(ctx, "web server stopped", "err", err)
		os.Exit(1)
	}

}
