package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Store interface {
	// Load returns ErrNotFound for missing and expired sessions.
	Load(ctx context.Context, key string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	// Delete is a no-op for unknown keys.
	Delete(ctx context.Context, key string) error
}

// Open returns the stored session for key, or a new one when key is
// empty, unknown or expired.
func Open(ctx context.Context, store Store, key string, ttl time.Duration) (*Session, error) {
	if key == "" {
		return New(ttl), nil
	}

	s, err := store.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return New(ttl), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store.Load: %w", err)
	}

	return s, nil
}

// Commit saves s if it was modified and clears the flag.
func Commit(ctx context.Context, store Store, s *Session) error {
	if !s.Modified() {
		return nil
	}

	if err := store.Save(ctx, s); err != nil {
		return fmt.Errorf("store.Save: %w", err)
	}

	s.modified = false

	return nil
}
