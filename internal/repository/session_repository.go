package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/sessioncart/internal/db"
	"github.com/nikolayk812/sessioncart/internal/session"
)

// SessionStore keeps sessions in the sessions table.
type SessionStore struct {
	q *db.Queries
}

var _ session.Store = (*SessionStore)(nil)

func NewSession(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{
		q: db.New(pool),
	}
}

func (r *SessionStore) Load(ctx context.Context, key string) (*session.Session, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	row, err := r.q.GetSession(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetSession: %w", err)
	}

	s, err := session.Decode(row.SessionKey, row.SessionData, row.ExpireDate)
	if err != nil {
		return nil, fmt.Errorf("session.Decode: %w", err)
	}

	return s, nil
}

func (r *SessionStore) Save(ctx context.Context, s *session.Session) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("s.Encode: %w", err)
	}

	err = r.q.UpsertSession(ctx, db.UpsertSessionParams{
		SessionKey:  s.Key(),
		SessionData: data,
		ExpireDate:  s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertSession: %w", err)
	}

	return nil
}

func (r *SessionStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := r.q.DeleteSession(ctx, key); err != nil {
		return fmt.Errorf("q.DeleteSession: %w", err)
	}

	return nil
}

// DeleteExpired purges expired sessions and returns how many were removed.
func (r *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	n, err := r.q.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, fmt.Errorf("q.DeleteExpiredSessions: %w", err)
	}

	return n, nil
}
