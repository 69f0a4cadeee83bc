package models

import "time"

// Post represents a single publication owned by a user.
// Posts are immutable after creation except for the Text field.
type Post struct {
	// ID is the server-assigned unique identifier of the post.
	ID int64 `json:"id"`

	// UserID references the owning user. The owner must exist at
	// creation time.
	UserID int64 `json:"user_id"`

	// Text is the optional textual body of the post.
	Text string `json:"text"`

	// Image is an optional opaque image payload (e.g. base64 data).
	Image string `json:"image,omitempty"`

	// Timestamp is the creation time assigned by the store at insert.
	Timestamp time.Time `json:"timestamp"`

	// Username is the owner's handle, populated by queries that join
	// the users table. Empty on plain row reads.
	Username string `json:"username,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
