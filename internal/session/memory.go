package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps encoded sessions in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Load(_ context.Context, key string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)) {
		return nil, ErrNotFound
	}

	s, err := Decode(key, entry.data, entry.expiresAt)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("s.Encode: %w", err)
	}

	m.mu.Lock()
	m.entries[s.Key()] = memoryEntry{data: data, expiresAt: s.ExpiresAt}
	m.mu.Unlock()

	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}
