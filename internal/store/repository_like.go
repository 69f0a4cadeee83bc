package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
)

// Like operations of [postRepository]. Mutations run the existence checks and
// the write inside one transaction; the UNIQUE (post_id, user_id) constraint
// backs the ON CONFLICT DO NOTHING insert.

// LikePost records that userID likes postID.
//
// Returns false without modifying anything when the like already exists.
// Returns [ErrPostNotFound] or [ErrUserNotFound] when either entity is
// absent.
func (r *postRepository) LikePost(ctx context.Context, postID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.LikePost").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkPostExists(ctx, tx, postID); err != nil {
		return false, err
	}
	if err = checkUserExists(ctx, tx, userID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, likePost, postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.LikePost").
			Int64("post_id", postID).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert like")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.LikePost").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	inserted, _ := result.RowsAffected()

	return inserted > 0, nil
}

// UnlikePost removes userID's like of postID.
//
// Returns false when there is no like to remove. Returns [ErrPostNotFound]
// or [ErrUserNotFound] when either entity is absent.
func (r *postRepository) UnlikePost(ctx context.Context, postID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UnlikePost").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkPostExists(ctx, tx, postID); err != nil {
		return false, err
	}
	if err = checkUserExists(ctx, tx, userID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, unlikePost, postID, userID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UnlikePost").
			Int64("post_id", postID).
			Int64("user_id", userID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete like")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.UnlikePost").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	removed, _ := result.RowsAffected()

	return removed > 0, nil
}

// IsPostLiked reports whether userID currently likes postID.
//
// Returns [ErrPostNotFound] or [ErrUserNotFound] when either entity is
// absent.
func (r *postRepository) IsPostLiked(ctx context.Context, postID, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	if err := checkPostExists(ctx, r.db, postID); err != nil {
		return false, err
	}
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return false, err
	}

	var liked bool
	if err := r.db.QueryRowContext(ctx, isPostLiked, postID, userID).Scan(&liked); err != nil {
		log.Err(err).Str("func", "*postRepository.IsPostLiked").
			Int64("post_id", postID).
			Int64("user_id", userID).
			Msg("failed to query like")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return liked, nil
}

// CountPostLikes returns the number of likes of postID.
//
// Returns [ErrPostNotFound] when the post is absent.
func (r *postRepository) CountPostLikes(ctx context.Context, postID int64) (int64, error) {
	if err := checkPostExists(ctx, r.db, postID); err != nil {
		return 0, err
	}

	return r.queryCount(ctx, "*postRepository.CountPostLikes", countPostLikes, postID)
}
