package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// Comment operations of [postRepository].

// CommentPost inserts a comment with a server-assigned NOW() timestamp and
// returns the fully populated [models.Comment]. The post and the author are
// verified to exist inside the same transaction as the insert.
//
// Returns [ErrPostNotFound] or [ErrUserNotFound] when either entity is
// absent.
func (r *postRepository) CommentPost(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CommentPost").Msg("failed to begin transaction")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkPostExists(ctx, tx, comment.PostID); err != nil {
		return models.Comment{}, err
	}
	if err = checkUserExists(ctx, tx, comment.UserID); err != nil {
		return models.Comment{}, err
	}

	var created models.Comment
	err = tx.QueryRowContext(ctx, createComment, comment.PostID, comment.UserID, comment.Text).
		Scan(&created.ID, &created.PostID, &created.UserID, &created.Text, &created.Timestamp)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CommentPost").
			Int64("post_id", comment.PostID).
			Int64("user_id", comment.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.CommentPost").Msg("failed to commit transaction")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// GetPostComments returns every comment of postID ordered by timestamp
// ascending (oldest first).
//
// Returns [ErrPostNotFound] when the post is absent.
func (r *postRepository) GetPostComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := checkPostExists(ctx, r.db, postID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, listPostComments, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPostComments").Int64("post_id", postID).Msg("failed to query comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 10)

	for rows.Next() {
		var comment models.Comment
		if scanErr := rows.Scan(&comment.ID, &comment.PostID, &comment.UserID, &comment.Text, &comment.Timestamp); scanErr != nil {
			log.Err(scanErr).Str("func", "*postRepository.GetPostComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*postRepository.GetPostComments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// CountPostComments returns the number of comments of postID.
//
// Returns [ErrPostNotFound] when the post is absent.
func (r *postRepository) CountPostComments(ctx context.Context, postID int64) (int64, error) {
	if err := checkPostExists(ctx, r.db, postID); err != nil {
		return 0, err
	}

	return r.queryCount(ctx, "*postRepository.CountPostComments", countPostComments, postID)
}

// DeleteComment removes the comment row by id and reports whether a row was
// removed. Unlike the other deletes it does not pre-check existence: a
// missing comment simply yields false.
func (r *postRepository) DeleteComment(ctx context.Context, commentID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeleteComment").
			Int64("comment_id", commentID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete comment")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, _ := result.RowsAffected()

	return deleted > 0, nil
}
