package models

// UserCreate is the registration request body. Password carries the
// plaintext to be hashed by the service layer; it is never persisted as-is.
type UserCreate struct {
	Username    string `json:"username"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// PostUpdate is the post edit request body. Only the text of a post may
// change after creation.
type PostUpdate struct {
	Text string `json:"text"`
}

// PasswordVerify is the password verification request body.
type PasswordVerify struct {
	Password string `json:"password"`
}

// CommentCreate is the comment creation request body.
type CommentCreate struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}
