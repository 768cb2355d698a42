package session_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/sessioncart/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	s := session.New(time.Hour)
	s.Set("cart", map[string]int{"p1": 2})
	require.NoError(t, session.Commit(ctx, store, s))
	assert.False(t, s.Modified())

	loaded, err := store.Load(ctx, s.Key())
	require.NoError(t, err)

	got, ok, err := session.Load[map[string]int](loaded, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]int{"p1": 2}, got)

	require.NoError(t, store.Delete(ctx, s.Key()))
	require.NoError(t, store.Delete(ctx, s.Key()))

	_, err = store.Load(ctx, s.Key())
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMemoryStoreExpired(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	s := session.New(-time.Minute)
	s.MarkModified()
	require.NoError(t, session.Commit(ctx, store, s))

	_, err := store.Load(ctx, s.Key())
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestOpen(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	existing := session.New(time.Hour)
	existing.Set("seen", true)
	require.NoError(t, session.Commit(ctx, store, existing))

	tests := []struct {
		name        string
		key         string
		wantSameKey bool
	}{
		{
			name: "empty key: new session",
			key:  "",
		},
		{
			name: "unknown key: new session",
			key:  "unknown",
		},
		{
			name:        "known key: stored session",
			key:         existing.Key(),
			wantSameKey: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := session.Open(ctx, store, tt.key, time.Hour)
			require.NoError(t, err)

			if tt.wantSameKey {
				assert.Equal(t, tt.key, s.Key())
				assert.True(t, s.Has("seen"))
				return
			}
			assert.NotEqual(t, tt.key, s.Key())
			assert.False(t, s.Has("seen"))
		})
	}
}

func TestCommitUnmodified(t *testing.T) {
	ctx := t.Context()
	store := session.NewMemoryStore()

	s := session.New(time.Hour)
	require.NoError(t, session.Commit(ctx, store, s))

	_, err := store.Load(ctx, s.Key())
	assert.ErrorIs(t, err, session.ErrNotFound)
}
