package tokenstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/cryptox"
)

const sealedPrefix = "sealed:v1:"

// ErrUnreadableToken is returned by SealedStore.Get when the stored value was
// not sealed with the configured passphrase.
var ErrUnreadableToken = errors.New("stored token cannot be unsealed")

// SealedStore encrypts the token before handing it to another Store. The
// stored value is sealedPrefix followed by base64(salt||nonce||ciphertext).
type SealedStore struct {
	inner      Store
	passphrase []byte

	mu   sync.Mutex
	salt []byte
	key  []byte
}

var _ Store = (*SealedStore)(nil)

func NewSealedStore(inner Store, passphrase string) *SealedStore {
	return &SealedStore{inner: inner, passphrase: []byte(passphrase)}
}

func (s *SealedStore) Get(ctx context.Context) (string, error) {
	raw, err := s.inner.Get(ctx)
	if err != nil || raw == "" {
		return raw, err
	}

	enc, ok := strings.CutPrefix(raw, sealedPrefix)
	if !ok {
		return "", ErrUnreadableToken
	}
	data, err := base64.RawStdEncoding.DecodeString(enc)
	if err != nil || len(data) < cryptox.SaltSize {
		return "", ErrUnreadableToken
	}

	plain, err := cryptox.Open(data[cryptox.SaltSize:], s.keyFor(data[:cryptox.SaltSize]))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableToken, err)
	}
	return string(plain), nil
}

func (s *SealedStore) Save(ctx context.Context, token string) error {
	salt, err := s.currentSalt()
	if err != nil {
		return err
	}

	sealed, err := cryptox.Seal([]byte(token), s.keyFor(salt))
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}

	data := append(append([]byte{}, salt...), sealed...)
	return s.inner.Save(ctx, sealedPrefix+base64.RawStdEncoding.EncodeToString(data))
}

func (s *SealedStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}

func (s *SealedStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	return s.inner.SavedAt(ctx)
}

// keyFor returns the key for salt, deriving it only when the salt changes.
func (s *SealedStore) keyFor(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key == nil || !bytes.Equal(s.salt, salt) {
		s.salt = append([]byte{}, salt...)
		s.key = cryptox.DeriveKey(s.passphrase, s.salt)
	}
	return s.key
}

func (s *SealedStore) currentSalt() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.salt != nil {
		return s.salt, nil
	}
	salt, err := cryptox.RandomBytes(cryptox.SaltSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
