// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It carries authentication credentials and the admin flag used by
// role-restricted routes.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the display name chosen at registration.
	Username string `gorm:"size:255;not null" json:"username"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null" json:"-"`

	// IsAdmin marks accounts allowed to call the /api/admin routes.
	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName maps the entity onto the users table.
func (User) TableName() string { return "users" }
