package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nikolayk812/sessioncart/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSetMarksModified(t *testing.T) {
	s := session.New(time.Hour)
	assert.False(t, s.Modified())
	assert.NotEmpty(t, s.Key())

	s.Set("color", "blue")
	assert.True(t, s.Modified())
	assert.True(t, s.Has("color"))
}

func TestSessionDelete(t *testing.T) {
	tests := []struct {
		name         string
		setup        map[string]any
		key          string
		wantModified bool
	}{
		{
			name:         "delete present key: modified",
			setup:        map[string]any{"a": 1},
			key:          "a",
			wantModified: true,
		},
		{
			name:         "delete absent key: untouched",
			setup:        map[string]any{"a": 1},
			key:          "b",
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roundTrip(t, tt.setup)
			require.False(t, s.Modified())

			s.Delete(tt.key)
			assert.Equal(t, tt.wantModified, s.Modified())
			assert.False(t, s.Has(tt.key))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing key: not found", func(t *testing.T) {
		s := session.New(time.Hour)

		got, ok, err := session.Load[map[string]int](s, "cart")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("typed value: same reference", func(t *testing.T) {
		s := session.New(time.Hour)
		stored := map[string]int{"p1": 1}
		s.Set("cart", stored)

		got, ok, err := session.Load[map[string]int](s, "cart")
		require.NoError(t, err)
		require.True(t, ok)

		got["p2"] = 2
		assert.Equal(t, 2, stored["p2"])
	})

	t.Run("raw value: decoded once and cached", func(t *testing.T) {
		s := roundTrip(t, map[string]any{"cart": map[string]int{"p1": 3}})

		first, ok, err := session.Load[map[string]int](s, "cart")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, map[string]int{"p1": 3}, first)

		first["p1"] = 9

		second, _, err := session.Load[map[string]int](s, "cart")
		require.NoError(t, err)
		assert.Equal(t, 9, second["p1"])
		assert.False(t, s.Modified())
	})

	t.Run("raw value of wrong shape: error", func(t *testing.T) {
		s := roundTrip(t, map[string]any{"cart": map[string]string{"p1": "three"}})

		_, ok, err := session.Load[map[string]int](s, "cart")
		assert.True(t, ok)
		assert.ErrorContains(t, err, "session value[cart]: json.Unmarshal")
	})

	t.Run("typed value of other type: error", func(t *testing.T) {
		s := session.New(time.Hour)
		s.Set("cart", 42)

		_, _, err := session.Load[map[string]int](s, "cart")
		assert.EqualError(t, err, "session value[cart] has type int")
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		data      []byte
		wantError string
	}{
		{
			name: "object: ok",
			key:  "k",
			data: []byte(`{"cart":{"p1":1}}`),
		},
		{
			name: "empty data: ok",
			key:  "k",
		},
		{
			name:      "empty key: error",
			data:      []byte(`{}`),
			wantError: "key is empty",
		},
		{
			name:      "not an object: error",
			key:       "k",
			data:      []byte(`[1,2]`),
			wantError: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := session.Decode(tt.key, tt.data, time.Time{})
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, s.Key())
			assert.False(t, s.Modified())
		})
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()

	assert.False(t, (&session.Session{}).Expired(now))
	assert.True(t, (&session.Session{ExpiresAt: now}).Expired(now))
	assert.False(t, (&session.Session{ExpiresAt: now.Add(time.Second)}).Expired(now))
}

func roundTrip(t *testing.T, values map[string]any) *session.Session {
	t.Helper()

	data, err := json.Marshal(values)
	require.NoError(t, err)

	s, err := session.Decode("key", data, time.Now().Add(time.Hour))
	require.NoError(t, err)

	return s
}
