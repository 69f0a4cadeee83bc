package models

// Like records that a user liked a post. At most one row may exist per
// (post, user) pair; the uniqueness is enforced by a database constraint.
type Like struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
