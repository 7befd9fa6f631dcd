package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-oauth2/oauth2/v4"
	oauthmodels "github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// errGrantNotSupported is returned by the token store methods that only the
// authorization_code and refresh_token grants would reach. This server only
// serves client_credentials.
var errGrantNotSupported = errors.New("grant not supported by this token store")

// GormClientStore loads registered machine clients for the OAuth2 manager.
type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns the stored client. models.OAuthClient implements both
// oauth2.ClientInfo and ClientPasswordVerifier, so secrets are compared
// against the bcrypt hash instead of plaintext.
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client models.OAuthClient
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GormTokenStore persists issued access tokens so they can be audited and
// revoked.
type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	token := &models.OAuthToken{
		ClientID:    info.GetClientID(),
		UserID:      info.GetUserID(),
		AccessToken: info.GetAccess(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&models.OAuthToken{}).Error
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	var token models.OAuthToken
	if err := s.db.WithContext(ctx).Where("access_token = ?", access).First(&token).Error; err != nil {
		return nil, err
	}
	return &oauthmodels.Token{
		ClientID:        token.ClientID,
		UserID:          token.UserID,
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: time.Until(token.ExpiresAt),
		Scope:           token.Scopes,
	}, nil
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return errGrantNotSupported
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return errGrantNotSupported
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	return nil, errGrantNotSupported
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return nil, errGrantNotSupported
}
