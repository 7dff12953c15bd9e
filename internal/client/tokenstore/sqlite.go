package tokenstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/filex"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the SQLite file at path and migrates it.
// Use ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one connection: ":memory:" databases are per connection, and the
	// store never needs more than a single writer.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context) (string, error) {
	token, _, err := getValue(ctx, s.db, common.TokenStorageKey)
	return token, err
}

func (s *SQLiteStore) Save(ctx context.Context, token string) error {
	savedAt := s.now().UTC().Format(time.RFC3339Nano)
	return withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		if err := setValue(ctx, tx, common.TokenStorageKey, token); err != nil {
			return err
		}
		return setValue(ctx, tx, common.TokenSavedAtKey, savedAt)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		if err := deleteValue(ctx, tx, common.TokenStorageKey); err != nil {
			return err
		}
		return deleteValue(ctx, tx, common.TokenSavedAtKey)
	})
}

func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := getValue(ctx, s.db, common.TokenSavedAtKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse saved_at %q: %w", raw, err)
	}
	return t, true, nil
}
