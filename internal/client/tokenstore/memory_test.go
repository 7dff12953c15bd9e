package tokenstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	tok, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, m.Save(ctx, "a"))
	require.NoError(t, m.Save(ctx, "b"))
	tok, _ = m.Get(ctx)
	assert.Equal(t, "b", tok)

	at, ok, err := m.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fixed, at)

	require.NoError(t, m.Clear(ctx))
	tok, _ = m.Get(ctx)
	assert.Empty(t, tok)
	_, ok, _ = m.SavedAt(ctx)
	assert.False(t, ok)
}

func TestMemoryStore_ConcurrentUse(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Save(ctx, "t")
			_, _ = m.Get(ctx)
			_ = m.Clear(ctx)
		}()
	}
	wg.Wait()
}
