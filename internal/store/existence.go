package store

import (
	"context"
	"database/sql"
	"fmt"
)

// querier is the subset of *sql.DB and *sql.Tx needed by the existence-check
// helpers, so the same guard runs both inside and outside transactions.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// checkUserExists fails fast with [ErrUserNotFound] when no user row has the
// given id. Used as a guard before dependent writes and reads.
func checkUserExists(ctx context.Context, q querier, userID int64) error {
	var exists bool
	if err := q.QueryRowContext(ctx, userExists, userID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !exists {
		return ErrUserNotFound
	}

	return nil
}

// checkPostExists fails fast with [ErrPostNotFound] when no post row has the
// given id.
func checkPostExists(ctx context.Context, q querier, postID int64) error {
	var exists bool
	if err := q.QueryRowContext(ctx, postExists, postID).Scan(&exists); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !exists {
		return ErrPostNotFound
	}

	return nil
}
