// Package common contains shared constants and sentinel errors used across
// the storefront client components.
package common

const (
	// AuthorizationHeader carries the bearer token on outbound API requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme is the scheme prefix placed before the token.
	BearerScheme = "Bearer"

	// RequestIDHeader carries a per-request identifier for log correlation.
	RequestIDHeader = "X-Request-ID"

	// TokenStorageKey is the fixed key the token is persisted under.
	TokenStorageKey = "jwt"

	// TokenSavedAtKey records when the current token was persisted.
	TokenSavedAtKey = "jwt_saved_at"
)
