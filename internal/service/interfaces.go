package service

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService covers account lifecycle, password verification and the
// follow graph.
type UserService interface {
	Create(ctx context.Context, req models.UserCreate) (models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Edit(ctx context.Context, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, userID int64) (bool, error)
	VerifyPassword(ctx context.Context, userID int64, password string) (bool, error)

	Follow(ctx context.Context, userID, followerID int64) (bool, error)
	Unfollow(ctx context.Context, userID, followerID int64) (bool, error)
	IsFollowing(ctx context.Context, userID, followerID int64) (bool, error)
	Followers(ctx context.Context, userID, limit int64) ([]models.User, error)
	Followees(ctx context.Context, userID, limit int64) ([]models.User, error)
	FollowersCount(ctx context.Context, userID int64) (int64, error)
	FolloweesCount(ctx context.Context, userID int64) (int64, error)
}

// PostService covers posts, likes and comments.
type PostService interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	Get(ctx context.Context, postID int64) (models.Post, error)
	EditText(ctx context.Context, postID int64, text string) (models.Post, error)
	Delete(ctx context.Context, postID int64) (bool, error)
	List(ctx context.Context, limit int64) ([]models.Post, error)
	UserPosts(ctx context.Context, userID, limit int64) ([]models.Post, error)
	UserPostsCount(ctx context.Context, userID int64) (int64, error)

	Like(ctx context.Context, postID, userID int64) (bool, error)
	Unlike(ctx context.Context, postID, userID int64) (bool, error)
	IsLiked(ctx context.Context, postID, userID int64) (bool, error)
	LikesCount(ctx context.Context, postID int64) (int64, error)

	Comment(ctx context.Context, postID int64, req models.CommentCreate) (models.Comment, error)
	Comments(ctx context.Context, postID int64) ([]models.Comment, error)
	CommentsCount(ctx context.Context, postID int64) (int64, error)
	DeleteComment(ctx context.Context, commentID int64) (bool, error)
}
