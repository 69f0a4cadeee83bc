package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
)

// postService is the concrete implementation of PostService. Entity
// existence (owner, post, commenter) is enforced by the store inside its
// write transactions; the service layer validates request shape only.
type postService struct {
	// postRepository is the data-access layer for posts, likes and comments.
	postRepository store.PostRepository

	// defaultPostsLimit bounds post listings when the caller does not supply
	// a limit.
	defaultPostsLimit int64

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPostService constructs a PostService wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewPostService(postRepository store.PostRepository, cfg config.App, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		defaultPostsLimit: cfg.PostsLimit,
		logger:            logger,
	}
}

// Create publishes a new post and returns it fully populated (id, timestamp,
// owner username).
//
// Returns models.ValidationErrors when user_id is missing or non-positive,
// or a wrapped store error (store.ErrUserNotFound when the owner is absent).
func (s *postService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	if post.UserID <= 0 {
		log.Error().Int64("user_id", post.UserID).Msg("invalid post data provided")
		return models.Post{}, models.ValidationErrors{"user_id": "required field"}
	}

	postID, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("user_id", post.UserID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	created, err := s.postRepository.GetPost(ctx, postID)
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("failed to read back created post")
		return models.Post{}, fmt.Errorf("failed to read back created post: %w", err)
	}

	return created, nil
}

// Get returns a post with its owner's username.
func (s *postService) Get(ctx context.Context, postID int64) (models.Post, error) {
	return s.postRepository.GetPost(ctx, postID)
}

// EditText changes the text of an existing post and returns the updated
// post.
func (s *postService) EditText(ctx context.Context, postID int64, text string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := s.postRepository.UpdatePostText(ctx, postID, text); err != nil {
		log.Err(err).Int64("post_id", postID).Msg("post update ended with error")
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return s.postRepository.GetPost(ctx, postID)
}

// Delete removes a post together with its likes and comments.
func (s *postService) Delete(ctx context.Context, postID int64) (bool, error) {
	return s.postRepository.DeletePost(ctx, postID)
}

// List returns the newest posts across all users. A negative limit falls
// back to the configured default; an explicit zero yields an empty page.
func (s *postService) List(ctx context.Context, limit int64) ([]models.Post, error) {
	return s.postRepository.ListPosts(ctx, s.boundedLimit(limit))
}

// UserPosts returns the newest posts of one user. A negative limit falls
// back to the configured default; an explicit zero yields an empty page.
func (s *postService) UserPosts(ctx context.Context, userID, limit int64) ([]models.Post, error) {
	return s.postRepository.ListUserPosts(ctx, userID, s.boundedLimit(limit))
}

// UserPostsCount returns the number of posts owned by userID.
func (s *postService) UserPostsCount(ctx context.Context, userID int64) (int64, error) {
	return s.postRepository.CountUserPosts(ctx, userID)
}

// Like records a like. Reports whether the like was newly created.
func (s *postService) Like(ctx context.Context, postID, userID int64) (bool, error) {
	return s.postRepository.LikePost(ctx, postID, userID)
}

// Unlike removes a like. Reports whether a like was removed.
func (s *postService) Unlike(ctx context.Context, postID, userID int64) (bool, error) {
	return s.postRepository.UnlikePost(ctx, postID, userID)
}

// IsLiked reports the current like state.
func (s *postService) IsLiked(ctx context.Context, postID, userID int64) (bool, error) {
	return s.postRepository.IsPostLiked(ctx, postID, userID)
}

// LikesCount returns the number of likes of postID.
func (s *postService) LikesCount(ctx context.Context, postID int64) (int64, error) {
	return s.postRepository.CountPostLikes(ctx, postID)
}

// Comment attaches a comment to a post and returns it fully populated.
//
// Returns models.ValidationErrors when user_id or text is missing.
func (s *postService) Comment(ctx context.Context, postID int64, req models.CommentCreate) (models.Comment, error) {
	log := logger.FromContext(ctx)

	errs := models.ValidationErrors{}
	if req.UserID <= 0 {
		errs["user_id"] = "required field"
	}
	if req.Text == "" {
		errs["text"] = "required field"
	}
	if len(errs) > 0 {
		log.Error().Int64("post_id", postID).Msg("invalid comment data provided")
		return models.Comment{}, errs
	}

	created, err := s.postRepository.CommentPost(ctx, models.Comment{
		PostID: postID,
		UserID: req.UserID,
		Text:   req.Text,
	})
	if err != nil {
		log.Err(err).Int64("post_id", postID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// Comments returns every comment of a post, oldest first.
func (s *postService) Comments(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.postRepository.GetPostComments(ctx, postID)
}

// CommentsCount returns the number of comments of postID.
func (s *postService) CommentsCount(ctx context.Context, postID int64) (int64, error) {
	return s.postRepository.CountPostComments(ctx, postID)
}

// DeleteComment removes a comment by id. A missing comment yields false
// without an error.
func (s *postService) DeleteComment(ctx context.Context, commentID int64) (bool, error) {
	return s.postRepository.DeleteComment(ctx, commentID)
}

func (s *postService) boundedLimit(limit int64) int64 {
	if limit < 0 {
		return s.defaultPostsLimit
	}
	return limit
}
