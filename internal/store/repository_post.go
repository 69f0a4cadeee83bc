package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
// It owns the "posts" table together with the dependent "likes" (see
// repository_like.go) and "comments" (see repository_comment.go) tables.
//
// Mutations that depend on another entity verify the referenced rows exist
// inside the same transaction as the write, so no dependent row can be
// created for an entity deleted mid-request.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a new post with a server-assigned NOW() timestamp and
// returns its id. The owning user is verified to exist inside the same
// transaction as the insert.
//
// Returns [ErrUserNotFound] when the owner is absent.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkUserExists(ctx, tx, post.UserID); err != nil {
		return 0, err
	}

	var postID int64
	if err = tx.QueryRowContext(ctx, createPost, post.UserID, post.Text, post.Image).Scan(&postID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").
			Int64("user_id", post.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert post")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return postID, nil
}

// GetPost retrieves a post joined with its owner's username.
//
// Returns [ErrPostNotFound] when no row matches.
func (r *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	var post models.Post
	err := r.db.QueryRowContext(ctx, getPostByID, postID).
		Scan(&post.ID, &post.UserID, &post.Text, &post.Image, &post.Timestamp, &post.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}

		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("failed to query post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePostText changes only the text field of an existing post. All other
// post fields are immutable after creation.
//
// Returns [ErrPostNotFound] when the post is absent.
func (r *postRepository) UpdatePostText(ctx context.Context, postID int64, text string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePostText").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkPostExists(ctx, tx, postID); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, updatePostText, text, postID); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePostText").
			Int64("post_id", postID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update post text")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePostText").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// DeletePost removes the post row after verifying it exists. Dependent likes
// and comments are removed by the ON DELETE CASCADE constraints.
//
// Returns [ErrPostNotFound] when the post is already absent, so deleting the
// same post twice fails on the second call.
func (r *postRepository) DeletePost(ctx context.Context, postID int64) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err = checkPostExists(ctx, tx, postID); err != nil {
		return false, err
	}

	result, err := tx.ExecContext(ctx, deletePost, postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").
			Int64("post_id", postID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete post")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	deleted, _ := result.RowsAffected()

	return deleted > 0, nil
}

// ListPosts returns posts joined with owner usernames ordered by creation
// time descending (most recent first), bounded by limit.
func (r *postRepository) ListPosts(ctx context.Context, limit int64) ([]models.Post, error) {
	query, args, err := buildListPostsQuery(limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.ListPosts").Msg("failed to build posts query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "*postRepository.ListPosts", query, args...)
}

// ListUserPosts returns the posts owned by userID, newest first, bounded by
// limit.
//
// Returns [ErrUserNotFound] when the owner is absent.
func (r *postRepository) ListUserPosts(ctx context.Context, userID, limit int64) ([]models.Post, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return nil, err
	}

	query, args, err := buildListUserPostsQuery(userID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.ListUserPosts").Msg("failed to build user posts query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPosts(ctx, "*postRepository.ListUserPosts", query, args...)
}

// CountUserPosts returns the number of posts owned by userID.
//
// Returns [ErrUserNotFound] when the owner is absent.
func (r *postRepository) CountUserPosts(ctx context.Context, userID int64) (int64, error) {
	if err := checkUserExists(ctx, r.db, userID); err != nil {
		return 0, err
	}

	return r.queryCount(ctx, "*postRepository.CountUserPosts", countUserPosts, userID)
}

// queryPosts runs a query producing post rows (joined with usernames) and
// scans them all.
func (r *postRepository) queryPosts(ctx context.Context, caller, query string, args ...any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute post listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 10)

	for rows.Next() {
		var post models.Post
		if scanErr := rows.Scan(&post.ID, &post.UserID, &post.Text, &post.Image, &post.Timestamp, &post.Username); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// queryCount runs a single-value COUNT query.
func (r *postRepository) queryCount(ctx context.Context, caller, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", caller).Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
