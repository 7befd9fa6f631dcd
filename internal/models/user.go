package models

import (
	"time"
)

// Permission levels for User records. Ordinary callers see the public
// catalog; elevated callers are staff accounts.
const (
	PermissionOrdinary = 1
	PermissionElevated = 2
)

// User is an identity record. The password column stores a bcrypt hash,
// never the plaintext, and is excluded from every JSON response.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"uniqueIndex;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	PermissionLevel int       `gorm:"not null;default:1" json:"permission_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Elevated reports whether the user has staff permissions.
func (u *User) Elevated() bool {
	return u.PermissionLevel >= PermissionElevated
}
