package web

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/gorilla/mux"
)

var errBadID = errors.New("bad id")

// actionFunc runs one shell action for a POST request.
type actionFunc func(r *http.Request) error

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer

	s.mu.Lock()
	page := s.shell.Page()
	err := s.renderer.Render(&buf, &page)
	s.mu.Unlock()

	if err != nil {
		s.logger.Error(r.Context(), "render failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// action wraps fn with form parsing, serialization and the redirect to "/".
// Actions that do not apply to the current view are logged and ignored.
func (s *Server) action(fn actionFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		err := fn(r)
		s.mu.Unlock()

		switch {
		case errors.Is(err, errBadID):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			s.logger.Warn(r.Context(), "action rejected", "path", r.URL.Path, "err", err)
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Join(errBadID, common.ErrInvalidNumber)
	}
	return id, nil
}

func (s *Server) login(r *http.Request) error {
	return s.shell.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
}

func (s *Server) signup(r *http.Request) error {
	return s.shell.Signup(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
}

func (s *Server) logout(r *http.Request) error {
	return s.shell.Logout(r.Context())
}

func (s *Server) showSignup(*http.Request) error {
	return s.shell.ShowSignup()
}

func (s *Server) showLogin(*http.Request) error {
	return s.shell.ShowLogin()
}

func (s *Server) switchTab(r *http.Request) error {
	return s.shell.SwitchTab(r.Context(), mux.Vars(r)["tab"])
}

func (s *Server) productDetails(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	return s.shell.ProductDetails(r.Context(), id)
}

// addToCart reads an optional quantity field; the list button sends none.
func (s *Server) addToCart(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	qty := 1
	if raw, ok := r.PostForm["quantity"]; ok && len(raw) > 0 {
		qty = ui.ParseQuantity(raw[0])
	}
	return s.shell.AddToCart(r.Context(), id, qty)
}

func (s *Server) updateCartItem(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	return s.shell.UpdateCartItem(r.Context(), id, r.PostFormValue("quantity"))
}

func (s *Server) removeCartItem(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	return s.shell.RemoveCartItem(r.Context(), id)
}

func (s *Server) placeOrder(r *http.Request) error {
	return s.shell.PlaceOrder(r.Context())
}

func (s *Server) orderDetails(r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	return s.shell.OrderDetails(r.Context(), id)
}
