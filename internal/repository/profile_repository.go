package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/sessioncart/internal/db"
	"github.com/nikolayk812/sessioncart/internal/domain"
	"github.com/nikolayk812/sessioncart/internal/port"
)

type profileRepository struct {
	q *db.Queries
}

func NewProfile(pool *pgxpool.Pool) port.ProfileRepository {
	return &profileRepository{
		q: db.New(pool),
	}
}

func NewProfileWithTx(tx pgx.Tx) port.ProfileRepository {
	return &profileRepository{
		q: db.New(tx),
	}
}

func (r *profileRepository) CreateProfile(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID is empty")
	}

	if err := r.q.CreateProfile(ctx, userID); err != nil {
		return fmt.Errorf("q.CreateProfile: %w", err)
	}

	return nil
}

// SaveOldCart replaces the profile's cart copy with quantities.
func (r *profileRepository) SaveOldCart(ctx context.Context, userID string, quantities domain.Quantities) error {
	if userID == "" {
		return fmt.Errorf("userID is empty")
	}
	if quantities == nil {
		quantities = domain.Quantities{}
	}

	oldCart, err := json.Marshal(quantities)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	rowsAffected, err := r.q.UpdateOldCart(ctx, db.UpdateOldCartParams{
		UserID:  userID,
		OldCart: oldCart,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateOldCart: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("profile[%s]: %w", userID, port.ErrProfileNotFound)
	}

	return nil
}

func (r *profileRepository) GetOldCart(ctx context.Context, userID string) (domain.Quantities, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID is empty")
	}

	oldCart, err := r.q.GetOldCart(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile[%s]: %w", userID, port.ErrProfileNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetOldCart: %w", err)
	}

	var quantities domain.Quantities
	if err := json.Unmarshal(oldCart, &quantities); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return quantities, nil
}
