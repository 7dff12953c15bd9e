// Package ui implements the storefront's view router and resource panels.
//
// A Shell owns one view.Page and mutates it in response to user actions.
// Front ends call an action, then render Shell.Page(). Whether the auth or
// the app view is shown is decided from the session token at each
// transition. Request failures never surface as Go errors: they become
// inline messages on the page. Returned errors only report actions that are
// not available in the current view.
//
// A Shell is not safe for concurrent use.
package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/view"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Shell struct {
	api     api.Client
	session *session.Session
	log     logging.Logger

	logoutOnUnauthorized bool
	progress             func(msg string)

	page view.Page
}

type Option func(*Shell)

// WithLogoutOnUnauthorized makes a 401/403 on any request made from the app
// view drop the token and return to the login form.
func WithLogoutOnUnauthorized(enabled bool) Option {
	return func(s *Shell) { s.logoutOnUnauthorized = enabled }
}

// WithProgress registers a callback invoked with each loading placeholder
// as it is shown, before the request is sent.
func WithProgress(fn func(msg string)) Option {
	return func(s *Shell) { s.progress = fn }
}

func New(client api.Client, sess *session.Session, log logging.Logger, opts ...Option) *Shell {
	s := &Shell{
		api:      client,
		session:  sess,
		log:      log,
		progress: func(string) {},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Shell) State() State {
	if !s.page.InApp {
		if s.page.Auth.ShowSignup {
			return StateSignup
		}
		return StateLogin
	}
	switch s.page.App.ActiveTab {
	case view.TabCart:
		return StateCart
	case view.TabOrders:
		return StateOrders
	default:
		return StateProducts
	}
}

// Page returns a snapshot of the view-model for rendering.
func (s *Shell) Page() view.Page {
	p := s.page
	p.State = s.State().String()
	return p
}

// Init picks the starting view from the stored token.
func (s *Shell) Init(ctx context.Context) {
	if s.session.IsLoggedIn(ctx) {
		s.enterApp(ctx, "")
		return
	}
	s.showAuth(ctx)
}

func (s *Shell) Login(ctx context.Context, username, password string) error {
	if s.page.InApp {
		return common.ErrNotInAuth
	}
	s.page.Alert = ""

	a := &s.page.Auth
	a.ShowSignup = false
	a.LoginMessage = ""
	a.LoginUsername = strings.TrimSpace(username)

	if a.LoginUsername == "" || password == "" {
		a.LoginMessage = msgMissingCredentials
		return nil
	}

	resp, err := s.api.Login(ctx, a.LoginUsername, password)
	if msg, ok := s.authenticate(ctx, resp, err, msgLoginFailed); !ok {
		a.LoginMessage = msg
		return nil
	}
	s.enterApp(ctx, a.LoginUsername)
	return nil
}

func (s *Shell) Signup(ctx context.Context, username, password string) error {
	if s.page.InApp {
		return common.ErrNotInAuth
	}
	s.page.Alert = ""

	a := &s.page.Auth
	a.ShowSignup = true
	a.SignupMessage = ""
	a.SignupUsername = strings.TrimSpace(username)

	if a.SignupUsername == "" || password == "" {
		a.SignupMessage = msgMissingCredentials
		return nil
	}

	resp, err := s.api.Signup(ctx, a.SignupUsername, password)
	if msg, ok := s.authenticate(ctx, resp, err, msgSignupFailed); !ok {
		a.SignupMessage = msg
		return nil
	}
	s.enterApp(ctx, a.SignupUsername)
	return nil
}

// authenticate stores the token from a login or signup response. On failure
// it returns the message to show.
func (s *Shell) authenticate(ctx context.Context, resp *models.AuthResponse, err error, fallback string) (string, bool) {
	if err != nil {
		return failureText(err, fallback), false
	}
	if resp == nil || resp.Token == "" {
		if resp != nil && resp.Message != "" {
			return resp.Message, false
		}
		return fallback, false
	}
	if err := s.session.Save(ctx, resp.Token); err != nil {
		s.log.Error(ctx, "failed to save token", "err", err)
		return fallback, false
	}
	return "", true
}

// Logout clears the token and returns to an empty login form. If the token
// cannot be cleared the view stays as it is and an alert is raised.
func (s *Shell) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear token", "err", err)
		s.page.Alert = msgLogoutFailed
		return err
	}
	s.showAuth(ctx)
	return nil
}

func (s *Shell) ShowSignup() error {
	return s.toggleAuthForm(true)
}

func (s *Shell) ShowLogin() error {
	return s.toggleAuthForm(false)
}

func (s *Shell) toggleAuthForm(signup bool) error {
	if s.page.InApp {
		return common.ErrNotInAuth
	}
	s.page.Alert = ""
	s.page.Auth.ShowSignup = signup
	s.page.Auth.LoginMessage = ""
	s.page.Auth.SignupMessage = ""
	return nil
}

// SwitchTab activates the named tab and loads its resource afresh.
func (s *Shell) SwitchTab(ctx context.Context, name string) error {
	if !s.page.InApp {
		return common.ErrNotInApp
	}
	tab, ok := view.ParseTab(name)
	if !ok {
		return common.ErrUnknownTab
	}
	s.page.Alert = ""
	s.activate(ctx, tab)
	return nil
}

func (s *Shell) enterApp(ctx context.Context, typedUsername string) {
	from := s.State()

	name := typedUsername
	if name == "" {
		name, _ = s.session.Username(ctx)
	}
	if name == "" {
		name = defaultUsername
	}

	s.page = view.Page{InApp: true}
	s.page.App.Welcome = welcomePrefix + name
	s.log.Info(ctx, "view changed", "from", from, "to", StateProducts, "user", name)

	s.activate(ctx, view.TabProducts)
}

func (s *Shell) showAuth(ctx context.Context) {
	from := s.State()
	s.page = view.Page{}
	s.log.Info(ctx, "view changed", "from", from, "to", StateLogin)
}

// activate switches tab and performs the tab's single load.
func (s *Shell) activate(ctx context.Context, tab view.Tab) {
	from := s.State()
	s.page.App.ActiveTab = tab
	if to := s.State(); to != from {
		s.log.Info(ctx, "view changed", "from", from, "to", to)
	}

	switch tab {
	case view.TabProducts:
		s.loadProducts(ctx)
	case view.TabCart:
		s.loadCart(ctx)
	case view.TabOrders:
		s.loadOrders(ctx)
	}
}

func (s *Shell) setLoading(p *view.Panel, msg string) {
	p.Reset()
	p.Loading = msg
	s.progress(msg)
}

// expireSession handles a rejected token when configured to. It reports
// whether the shell left the app view, in which case the caller must stop
// touching panels.
func (s *Shell) expireSession(ctx context.Context, err error) bool {
	if !s.logoutOnUnauthorized || !s.page.InApp || !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	s.log.Warn(ctx, "token rejected by server, logging out", "err", err)
	if s.Logout(ctx) != nil {
		return false
	}
	s.page.Auth.LoginMessage = msgSessionExpired
	return true
}

// failureText is the message for a failed request: the server's own text,
// the fallback for a response without one, or the network error message
// when no usable response arrived.
func failureText(err error, fallback string) string {
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		return fallback
	}
	return msgNetworkError
}
