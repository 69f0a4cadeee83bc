package store

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is worth
// retrying. See [PostgresErrorClassifier] for the PostgreSQL implementation.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts and the follow graph between them.
//
// Every method that references a user id performs an existence check first
// and returns [ErrUserNotFound] if the row is absent, so callers never
// operate on dangling references.
type UserRepository interface {
	// CreateUser inserts a new account (password already hashed) and
	// returns it with the server-assigned id. Returns [ErrUsernameTaken]
	// when the username unique constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser returns the user projection (no password digest) by id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// GetPasswordHash returns the stored password digest of the user.
	GetPasswordHash(ctx context.Context, userID int64) (string, error)

	// ListUsers returns all user projections ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the
	// resulting projection.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user row. Dependent posts, comments, likes and
	// follow edges are removed by the database cascade.
	DeleteUser(ctx context.Context, userID int64) (bool, error)

	// FollowUser records that follower follows user. Reports false without
	// modifying anything when the edge already exists.
	FollowUser(ctx context.Context, userID, followerID int64) (bool, error)

	// UnfollowUser removes the follow edge. Reports false when there is no
	// edge to remove.
	UnfollowUser(ctx context.Context, userID, followerID int64) (bool, error)

	// IsFollowing reports whether follower currently follows user.
	IsFollowing(ctx context.Context, userID, followerID int64) (bool, error)

	// GetFollowers lists the users following userID, ordered by edge
	// insertion, bounded by limit.
	GetFollowers(ctx context.Context, userID, limit int64) ([]models.User, error)

	// GetFollowees lists the users userID follows, ordered by edge
	// insertion, bounded by limit.
	GetFollowees(ctx context.Context, userID, limit int64) ([]models.User, error)

	// CountFollowers returns the number of users following userID.
	CountFollowers(ctx context.Context, userID int64) (int64, error)

	// CountFollowees returns the number of users userID follows.
	CountFollowees(ctx context.Context, userID int64) (int64, error)
}

// PostRepository persists posts together with their likes and comments.
//
// Operations referencing a post or user id check existence first and return
// [ErrPostNotFound] / [ErrUserNotFound] before any dependent write happens.
type PostRepository interface {
	// CreatePost inserts a post with a server-assigned timestamp after
	// verifying the owning user exists.
	CreatePost(ctx context.Context, post models.Post) (int64, error)

	// GetPost returns the post joined with its owner's username.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// UpdatePostText changes only the text field of an existing post.
	UpdatePostText(ctx context.Context, postID int64, text string) error

	// DeletePost removes the post row after verifying it exists.
	DeletePost(ctx context.Context, postID int64) (bool, error)

	// ListPosts returns posts joined with owner usernames, newest first,
	// bounded by limit.
	ListPosts(ctx context.Context, limit int64) ([]models.Post, error)

	// ListUserPosts returns the posts of one user, newest first, bounded
	// by limit.
	ListUserPosts(ctx context.Context, userID, limit int64) ([]models.Post, error)

	// CountUserPosts returns the number of posts owned by the user.
	CountUserPosts(ctx context.Context, userID int64) (int64, error)

	// LikePost records a like. Reports false without modifying anything
	// when the (post, user) pair is already liked.
	LikePost(ctx context.Context, postID, userID int64) (bool, error)

	// UnlikePost removes a like. Reports false when the pair is not liked.
	UnlikePost(ctx context.Context, postID, userID int64) (bool, error)

	// IsPostLiked reports whether the user currently likes the post.
	IsPostLiked(ctx context.Context, postID, userID int64) (bool, error)

	// CountPostLikes returns the number of likes on the post.
	CountPostLikes(ctx context.Context, postID int64) (int64, error)

	// CommentPost inserts a comment with a server-assigned timestamp after
	// verifying both the post and the commenting user exist.
	CommentPost(ctx context.Context, comment models.Comment) (models.Comment, error)

	// GetPostComments lists the post's comments oldest first.
	GetPostComments(ctx context.Context, postID int64) ([]models.Comment, error)

	// CountPostComments returns the number of comments on the post.
	CountPostComments(ctx context.Context, postID int64) (int64, error)

	// DeleteComment removes a comment row if present and reports whether a
	// row was removed. Deliberately performs no existence check and never
	// returns a not-found error.
	DeleteComment(ctx context.Context, commentID int64) (bool, error)
}
