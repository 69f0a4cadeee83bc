package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-social-api/models"
)

const (
	createUser = `INSERT INTO users (username, name, description, email, password_hash)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, username, name, description, email;`

	getUserByID = `SELECT id, username, name, description, email
    FROM users
    WHERE id = $1;`

	getUserPasswordHash = `SELECT password_hash
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, username, name, description, email
    FROM users
    ORDER BY id;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	postExists = `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1);`

	createPost = `INSERT INTO posts (user_id, text, image, timestamp)
    VALUES ($1, $2, $3, NOW())
    RETURNING id;`

	getPostByID = `SELECT p.id, p.user_id, p.text, p.image, p.timestamp, u.username
    FROM posts p
    JOIN users u ON p.user_id = u.id
    WHERE p.id = $1;`

	updatePostText = `UPDATE posts
    SET text = $1
    WHERE id = $2;`

	deletePost = `DELETE FROM posts
    WHERE id = $1;`

	countUserPosts = `SELECT COUNT(*) FROM posts WHERE user_id = $1;`

	likePost = `INSERT INTO likes (post_id, user_id)
    VALUES ($1, $2)
    ON CONFLICT (post_id, user_id) DO NOTHING;`

	unlikePost = `DELETE FROM likes
    WHERE post_id = $1 AND user_id = $2;`

	isPostLiked = `SELECT EXISTS (SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2);`

	countPostLikes = `SELECT COUNT(*) FROM likes WHERE post_id = $1;`

	createComment = `INSERT INTO comments (post_id, user_id, text, timestamp)
    VALUES ($1, $2, $3, NOW())
    RETURNING id, post_id, user_id, text, timestamp;`

	listPostComments = `SELECT id, post_id, user_id, text, timestamp
    FROM comments
    WHERE post_id = $1
    ORDER BY timestamp ASC;`

	countPostComments = `SELECT COUNT(*) FROM comments WHERE post_id = $1;`

	deleteComment = `DELETE FROM comments
    WHERE id = $1;`

	followUser = `INSERT INTO followers (from_user, to_user)
    VALUES ($1, $2)
    ON CONFLICT (from_user, to_user) DO NOTHING;`

	unfollowUser = `DELETE FROM followers
    WHERE from_user = $1 AND to_user = $2;`

	isFollowing = `SELECT EXISTS (SELECT 1 FROM followers WHERE from_user = $1 AND to_user = $2);`

	countFollowers = `SELECT COUNT(*) FROM followers WHERE to_user = $1;`

	countFollowees = `SELECT COUNT(*) FROM followers WHERE from_user = $1;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsQuery builds the feed listing: posts joined with owner
// usernames, newest first, bounded by limit.
func buildListPostsQuery(limit int64) (string, []any, error) {
	return psql.
		Select("p.id", "p.user_id", "p.text", "p.image", "p.timestamp", "u.username").
		From("posts p").
		Join("users u ON p.user_id = u.id").
		OrderBy("p.timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
}

// buildListUserPostsQuery builds the per-user post listing, newest first,
// bounded by limit.
func buildListUserPostsQuery(userID, limit int64) (string, []any, error) {
	return psql.
		Select("p.id", "p.user_id", "p.text", "p.image", "p.timestamp", "u.username").
		From("posts p").
		Join("users u ON p.user_id = u.id").
		Where(sq.Eq{"p.user_id": userID}).
		OrderBy("p.timestamp DESC").
		Limit(uint64(limit)).
		ToSql()
}

// buildListFollowersQuery builds the follower listing for a user: the user
// projections of everyone following userID, ordered by edge insertion.
func buildListFollowersQuery(userID, limit int64) (string, []any, error) {
	return psql.
		Select("u.id", "u.username", "u.name", "u.description", "u.email").
		From("followers f").
		Join("users u ON f.from_user = u.id").
		Where(sq.Eq{"f.to_user": userID}).
		OrderBy("f.id ASC").
		Limit(uint64(limit)).
		ToSql()
}

// buildListFolloweesQuery builds the followee listing for a user: the user
// projections of everyone userID follows, ordered by edge insertion.
func buildListFolloweesQuery(userID, limit int64) (string, []any, error) {
	return psql.
		Select("u.id", "u.username", "u.name", "u.description", "u.email").
		From("followers f").
		Join("users u ON f.to_user = u.id").
		Where(sq.Eq{"f.from_user": userID}).
		OrderBy("f.id ASC").
		Limit(uint64(limit)).
		ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE of the users table from the
// non-nil fields of update. The password, when present, must already be
// hashed by the caller. Returns the updated projection via RETURNING.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Password != nil {
		builder = builder.Set("password_hash", *update.Password)
	}

	return builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, username, name, description, email").
		ToSql()
}
