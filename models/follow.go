package models

// FollowEdge is a directed relationship row recording that user FromUser
// follows user ToUser. The relation is asymmetric: an edge in one direction
// says nothing about the opposite direction. At most one edge may exist per
// ordered (from, to) pair.
type FollowEdge struct {
	ID int64 `json:"id"`

	// FromUser is the follower.
	FromUser int64 `json:"from_user"`

	// ToUser is the followed user.
	ToUser int64 `json:"to_user"`
}

// TableName returns the name of the database table
// associated with the FollowEdge model.
func (f FollowEdge) TableName() string {
	return "followers"
}
