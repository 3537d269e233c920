package models

import (
	"database/sql"
	"time"
)

// Account lifecycle states stored in the users.status column.
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
)

// Account roles stored in the users.role column.
const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// User represents an ERP account entity used for authentication and
// role-based access control. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and never leaves the persistence layer.
	PasswordHash string `json:"-"`

	// Role controls access level. Known values: "admin", "user".
	Role string `json:"role"`

	// CompanyID links the user to the company record they belong to.
	CompanyID int64 `json:"company_id"`

	// Status is the account lifecycle state. Only "active" accounts may
	// log in.
	Status string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// LastLogin records the most recent successful login. Null until the
	// user has logged in at least once.
	LastLogin sql.NullTime `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsActive reports whether the account is allowed to authenticate.
func (u User) IsActive() bool {
	return u.Status == UserStatusActive
}
