// Package tokenstore persists the single session token of the storefront
// client.
//
// Two implementations are provided: SQLiteStore keeps the token in a small
// key/value table so it survives restarts, MemoryStore keeps it in process
// memory. Both report an absent token as "" with a nil error. SealedStore
// wraps either one and keeps the token encrypted under a passphrase.
package tokenstore

import (
	"context"
	"time"
)

// Store holds at most one token. Save overwrites any earlier value.
type Store interface {
	Get(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	// SavedAt reports when the current token was stored. ok is false when
	// there is no token.
	SavedAt(ctx context.Context) (t time.Time, ok bool, err error)
}
