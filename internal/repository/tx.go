package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/sessioncart/internal/db"
)

func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// pool is nil when the repository was built on a caller's transaction
	if pool == nil {
		return fn(q)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(q.WithTx(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}
