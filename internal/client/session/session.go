// Package session exposes the client's authentication state on top of a
// tokenstore.Store: whether a token exists, the bearer header that goes with
// it, and a best-effort username read from the token payload.
package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/storefront/internal/client/tokenstore"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Session struct {
	store tokenstore.Store
	log   logging.Logger
}

func New(store tokenstore.Store, log logging.Logger) *Session {
	return &Session{store: store, log: log}
}

// Token returns the stored token or "". A failing store is logged and
// treated as having no token.
func (s *Session) Token(ctx context.Context) string {
	tok, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "token store read failed", "err", err)
		return ""
	}
	return tok
}

func (s *Session) Save(ctx context.Context, token string) error {
	return s.store.Save(ctx, token)
}

func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *Session) IsLoggedIn(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// AuthHeader returns the headers to attach to an API request: empty without
// a token, otherwise only "Authorization: Bearer <token>".
func (s *Session) AuthHeader(ctx context.Context) http.Header {
	h := http.Header{}
	if tok := s.Token(ctx); tok != "" {
		h.Set(common.AuthorizationHeader, common.BearerScheme+" "+tok)
	}
	return h
}

// Username is UsernameFromToken applied to the current token.
func (s *Session) Username(ctx context.Context) (string, bool) {
	return UsernameFromToken(s.Token(ctx))
}

// UsernameFromToken reads the "sub" claim, then "username", from the payload
// segment of a JWT-shaped token without verifying it. It is a display hint
// only. Any malformed input yields ("", false).
func UsernameFromToken(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return "", false
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	for _, key := range []string{"sub", "username"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
