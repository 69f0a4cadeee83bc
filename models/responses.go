package models

// ErrorResponse is the uniform error envelope rendered by the HTTP layer for
// both not-found conditions (404) and validation failures (400). Keys name
// the offending field ("user_id", "post_id", "username", ...), values carry
// a human-readable message.
type ErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// StatusResponse is the body of the health-check endpoint.
type StatusResponse struct {
	Status string `json:"status"`
}

// DeletedResponse reports the outcome of a hard-delete operation.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// LikedResponse reports the like state of a (post, user) pair after a
// like/unlike/is-liked operation.
type LikedResponse struct {
	Liked bool `json:"liked"`
}

// FollowingResponse reports the follow state of a (user, follower) pair
// after a follow/unfollow/is-following operation.
type FollowingResponse struct {
	Following bool `json:"following"`
}

// ValidResponse reports the result of a password verification.
type ValidResponse struct {
	Valid bool `json:"valid"`
}

// CommentsResponse wraps a post's comment list.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// LikesCountResponse carries a post's like count.
type LikesCountResponse struct {
	LikesCount int64 `json:"likes_count"`
}

// CommentsCountResponse carries a post's comment count.
type CommentsCountResponse struct {
	CommentsCount int64 `json:"comments_count"`
}

// PostsCountResponse carries a user's post count.
type PostsCountResponse struct {
	PostsCount int64 `json:"posts_count"`
}

// FollowersCountResponse carries a user's follower count.
type FollowersCountResponse struct {
	FollowersCount int64 `json:"followers_count"`
}

// FolloweesCountResponse carries a user's followee count.
type FolloweesCountResponse struct {
	FolloweesCount int64 `json:"followees_count"`
}
