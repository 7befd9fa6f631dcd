package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OAuthClient is a registered machine client (POS terminal, partner
// storefront, ...) allowed to obtain catalog access tokens through the
// client_credentials grant. Secret holds a bcrypt hash; the plaintext is
// shown exactly once at registration time. Every client is owned by a
// User whose identity its tokens carry.
type OAuthClient struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Secret    string         `gorm:"not null" json:"-"`
	Name      string         `json:"name"`
	Domain    string         `json:"domain"`
	UserID    uint           `gorm:"not null" json:"user_id"`
	Scopes    string         `json:"scopes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// GetID implements oauth2.ClientInfo.
func (c *OAuthClient) GetID() string {
	return c.ID
}

// GetSecret implements oauth2.ClientInfo. Note this is the stored hash;
// secret checks go through VerifyPassword.
func (c *OAuthClient) GetSecret() string {
	return c.Secret
}

// GetDomain implements oauth2.ClientInfo.
func (c *OAuthClient) GetDomain() string {
	return c.Domain
}

// IsPublic implements oauth2.ClientInfo. Catalog clients are always
// confidential; public clients would not be issued a secret.
func (c *OAuthClient) IsPublic() bool {
	return false
}

// GetUserID implements oauth2.ClientInfo, reporting the owning user.
func (c *OAuthClient) GetUserID() string {
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword implements oauth2.ClientPasswordVerifier so the OAuth2
// server compares presented secrets against the bcrypt hash instead of
// raw string equality.
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
