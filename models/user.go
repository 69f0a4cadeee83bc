package models

// User represents a registered account.
// The stored password digest must never cross the HTTP boundary, so it is
// excluded from JSON serialization.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle (max 64 characters).
	Username string `json:"username"`

	// Name is the display name of the user (max 64 characters).
	Name string `json:"name"`

	// Description is an optional free-text profile description.
	Description string `json:"description"`

	// Email is the contact address (max 120 characters).
	Email string `json:"email"`

	// PasswordHash is the persisted password digest produced by the
	// credential hasher. Never exposed via JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user profile. Nil fields are
// left untouched. Password, when set, carries the plaintext to be re-hashed
// by the service layer before persistence.
type UserUpdate struct {
	ID          int64   `json:"-"`
	Username    *string `json:"username,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
}
