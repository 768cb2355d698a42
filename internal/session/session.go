// Package session is the per-visitor key-value store the cart lives in.
// A Session tracks its own dirty flag; Commit writes it back to a Store
// only when something changed.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	key    string
	values map[string]any

	modified bool

	ExpiresAt time.Time
}

// New returns an empty session with a random key.
func New(ttl time.Duration) *Session {
	return &Session{
		key:       uuid.NewString(),
		values:    make(map[string]any),
		ExpiresAt: time.Now().Add(ttl),
	}
}

func (s *Session) Key() string {
	return s.key
}

func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

func (s *Session) Set(key string, value any) {
	s.values[key] = value
	s.modified = true
}

func (s *Session) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}

	delete(s.values, key)
	s.modified = true
}

// MarkModified flags the session for saving. Callers that mutate a value
// obtained from Load in place must call it themselves.
func (s *Session) MarkModified() {
	s.modified = true
}

func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Load returns the value stored under key as T. Values restored by a Store
// are kept as raw JSON until first access; the decoded value replaces the
// raw one, so repeated loads share a reference.
func Load[T any](s *Session, key string) (T, bool, error) {
	var zero T

	v, ok := s.values[key]
	if !ok {
		return zero, false, nil
	}

	if typed, ok := v.(T); ok {
		return typed, true, nil
	}

	raw, ok := v.(json.RawMessage)
	if !ok {
		return zero, true, fmt.Errorf("session value[%s] has type %T", key, v)
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return zero, true, fmt.Errorf("session value[%s]: json.Unmarshal: %w", key, err)
	}

	s.values[key] = decoded

	return decoded, true, nil
}
