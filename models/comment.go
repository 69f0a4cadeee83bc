package models

import "time"

// Comment represents a user's comment on a post. Both the referenced post
// and the authoring user must exist at creation time.
type Comment struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`

	// Text is the body of the comment. Required.
	Text string `json:"text"`

	// Timestamp is the creation time assigned by the store at insert.
	Timestamp time.Time `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
