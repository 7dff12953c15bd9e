// Package web serves the storefront client as a local HTML page.
//
// Every button on the page is a form POST to a route that runs one shell
// action and redirects back to "/". Actions and renders are serialized so a
// handler finishes, network step included, before the next one starts.
package web

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// shell is the part of ui.Shell the web front end drives.
type shell interface {
	Init(ctx context.Context)
	Page() view.Page
	Login(ctx context.Context, username, password string) error
	Signup(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	ShowSignup() error
	ShowLogin() error
	SwitchTab(ctx context.Context, name string) error
	ProductDetails(ctx context.Context, id int64) error
	AddToCart(ctx context.Context, productID int64, quantity int) error
	UpdateCartItem(ctx context.Context, itemID int64, quantityInput string) error
	RemoveCartItem(ctx context.Context, itemID int64) error
	PlaceOrder(ctx context.Context) error
	OrderDetails(ctx context.Context, id int64) error
}

var _ shell = (*ui.Shell)(nil)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	shell    shell
	renderer view.Renderer
	gatherer prometheus.Gatherer
	logger   logging.Logger

	mu     sync.Mutex
	router *mux.Router
}

// NewServer builds the router. A nil gatherer serves the default
// Prometheus registry on /metrics.
func NewServer(address string, sh shell, renderer view.Renderer, gatherer prometheus.Gatherer, l logging.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		address:  address,
		shell:    sh,
		renderer: renderer,
		gatherer: gatherer,
		logger:   l.With("module", "web_server"),
	}
	s.router = s.routes()
	return s
}

// Handler is the router behind request logging and the same-origin check,
// so rejected and unmatched requests are logged too.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.sameOrigin(s.router))
}

// Init restores the session and loads the first panel.
func (s *Server) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shell.Init(ctx)
}

// Run initializes the shell and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.Init(ctx)

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "err", err)
		}
	}()

	s.logger.Info(ctx, "Starting web server", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handlePage).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	for path, fn := range map[string]actionFunc{
		"/auth/login":                    s.login,
		"/auth/signup":                   s.signup,
		"/auth/logout":                   s.logout,
		"/auth/show-signup":              s.showSignup,
		"/auth/show-login":               s.showLogin,
		"/tabs/{tab}":                    s.switchTab,
		"/products/{id:[0-9]+}":          s.productDetails,
		"/products/{id:[0-9]+}/cart":     s.addToCart,
		"/cart/items/{id:[0-9]+}":        s.updateCartItem,
		"/cart/items/{id:[0-9]+}/remove": s.removeCartItem,
		"/orders":                        s.placeOrder,
		"/orders/{id:[0-9]+}":            s.orderDetails,
	} {
		r.HandleFunc(path, s.action(fn)).Methods(http.MethodPost)
	}

	return r
}
