package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login identifier, matched case-sensitively as stored.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized and must never leave the persistence/service layers.
	PasswordHash string `json:"-"`

	// Email is an optional contact address. Nil when not provided at registration.
	Email *string `json:"email"`

	// CompanyID links the user to a company for inventory scoping. Nullable.
	CompanyID *int64 `json:"company_id"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
