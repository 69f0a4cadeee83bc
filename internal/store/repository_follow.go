package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// Follow-graph operations of [userRepository]. Every mutation runs the
// existence checks and the write inside one transaction so the check-then-act
// sequence cannot race with a concurrent request; the UNIQUE (from_user,
// to_user) constraint backs the ON CONFLICT DO NOTHING insert.

// FollowUser records that followerID follows userID.
//
// Returns false without modifying anything when the edge already exists.
// Returns [ErrUserNotFound] when either side of the edge is absent.
func (r *userRepository) FollowUser(ctx context.Context, userID, followerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FollowUser").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkUserExists(ctx, tx, userID); err != nil {
		return false, err
	}
	if err = checkUserExists(ctx, tx, followerID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, followUser, followerID, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FollowUser").
			Int64("user_id", userID).
			Int64("follower_id", followerID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert follow edge")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.FollowUser").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	inserted, _ := result.RowsAffected()

	return inserted > 0, nil
}

// UnfollowUser removes the follow edge from followerID to userID.
//
// Returns false when there is no edge to remove. Returns [ErrUserNotFound]
// when either user is absent.
func (r *userRepository) UnfollowUser(ctx context.Context, userID, followerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UnfollowUser").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkUserExists(ctx, tx, userID); err != nil {
		return false, err
	}
	if err = checkUserExists(ctx, tx, followerID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, unfollowUser, followerID, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UnfollowUser").
			Int64("user_id", userID).
			Int64("follower_id", followerID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete follow edge")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UnfollowUser").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	removed, _ := result.RowsAffected()

	return removed > 0, nil
}

// IsFollowing reports whether followerID currently follows userID.
//
// Returns [ErrUserNotFound] when either user is absent.
func (r *userRepository) IsFollowing(ctx context.Context, userID, followerID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return false, err
	}
	if err := checkUserExists(ctx, r.db, followerID); err != nil {
		return false, err
	}

	var following bool
	if err := r.db.QueryRowContext(ctx, isFollowing, followerID, userID).Scan(&following); err != nil {
		log.Err(err).Str("func", "*userRepository.IsFollowing").
			Int64("user_id", userID).
			Int64("follower_id", followerID).
			Msg("failed to query follow edge")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return following, nil
}

// GetFollowers lists the projections of users following userID, ordered by
// edge insertion (row id ascending), bounded by limit.
//
// Returns [ErrUserNotFound] when the subject user is absent.
func (r *userRepository) GetFollowers(ctx context.Context, userID, limit int64) ([]models.User, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return nil, err
	}

	query, args, err := buildListFollowersQuery(userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetFollowers").Msg("failed to build followers query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.GetFollowers", query, args...)
}

// GetFollowees lists the projections of users that userID follows, ordered
// by edge insertion (row id ascending), bounded by limit.
//
// Returns [ErrUserNotFound] when the subject user is absent.
func (r *userRepository) GetFollowees(ctx context.Context, userID, limit int64) ([]models.User, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return nil, err
	}

	query, args, err := buildListFolloweesQuery(userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetFollowees").Msg("failed to build followees query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryUsers(ctx, "*userRepository.GetFollowees", query, args...)
}

// CountFollowers returns the number of users following userID.
//
// Returns [ErrUserNotFound] when the subject user is absent.
func (r *userRepository) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return 0, err
	}

	return r.queryCount(ctx, "*userRepository.CountFollowers", countFollowers, userID)
}

// CountFollowees returns the number of users userID follows.
//
// Returns [ErrUserNotFound] when the subject user is absent.
func (r *userRepository) CountFollowees(ctx context.Context, userID int64) (int64, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return 0, err
	}

	return r.queryCount(ctx, "*userRepository.CountFollowees", countFollowees, userID)
}

// queryUsers runs a query producing user projection rows and scans them all.
func (r *userRepository) queryUsers(ctx context.Context, caller, query string, args ...any) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute user listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 10)

	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Username, &user.Name, &user.Description, &user.Email); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// queryCount runs a single-value COUNT query.
func (r *userRepository) queryCount(ctx context.Context, caller, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
