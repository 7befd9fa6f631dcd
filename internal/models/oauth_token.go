package models

import (
	"time"
)

// OAuthToken records an access token issued to a machine client. Kept so
// issued tokens can be revoked by deleting the row; the JWT itself stays
// self-contained for validation.
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"not null"`
	UserID      string
	AccessToken string `gorm:"uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
