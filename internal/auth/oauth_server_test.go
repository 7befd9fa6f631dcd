package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.OAuthClient{}, &models.OAuthToken{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	user := &models.User{
		Username: email,
		Email:    email,
		Password: "irrelevant-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestClient(t *testing.T, db *gorm.DB, id, secret string, userID uint) *models.OAuthClient {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	require.NoError(t, err)

	client := &models.OAuthClient{
		ID:     id,
		Secret: string(hash),
		Name:   "Test Client",
		Domain: "http://localhost",
		UserID: userID,
		Scopes: "read write",
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

func TestOAuthServerInitialization(t *testing.T) {
	db := setupTestDB(t)

	oauthService := NewOAuthService(db, testJWTSecret, time.Hour)
	assert.NotNil(t, oauthService)
	assert.NotNil(t, oauthService.GetServer())
}

func TestMachineTokenMatchesUserTokenShape(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret, time.Hour)

	owner := createTestUser(t, db, "owner@pizza.com")
	createTestClient(t, db, "machine-client", "machine-secret", owner.ID)

	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(),
		oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
			ClientID:     "machine-client",
			ClientSecret: "machine-secret",
			Scope:        "read write",
		})
	require.NoError(t, err)
	require.NotEmpty(t, tokenInfo.GetAccess())

	// The bearer middleware validates machine tokens with the same
	// TokenService as user tokens.
	claims, err := NewTokenService(testJWTSecret, time.Hour, time.Hour).ValidateAccessToken(tokenInfo.GetAccess())
	require.NoError(t, err)
	assert.Equal(t, "owner@pizza.com", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "read write", claims.Scope)
}

func TestMachineTokenPersisted(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret, time.Hour)

	owner := createTestUser(t, db, "owner@pizza.com")
	createTestClient(t, db, "machine-client", "machine-secret", owner.ID)

	tokenInfo, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(),
		oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
			ClientID:     "machine-client",
			ClientSecret: "machine-secret",
			Scope:        "read write",
		})
	require.NoError(t, err)

	var stored models.OAuthToken
	require.NoError(t, db.Where("access_token = ?", tokenInfo.GetAccess()).First(&stored).Error)
	assert.Equal(t, "machine-client", stored.ClientID)
	assert.True(t, stored.ExpiresAt.After(time.Now()))
}

func TestGenerateAccessTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret, time.Hour)

	owner := createTestUser(t, db, "owner@pizza.com")
	createTestClient(t, db, "machine-client", "machine-secret", owner.ID)

	_, err := oauthService.GetServer().Manager.GenerateAccessToken(context.Background(),
		oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
			ClientID:     "machine-client",
			ClientSecret: "wrong-secret",
		})
	assert.Error(t, err)
}

func TestClientStoreRetrievesClient(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner@pizza.com")
	createTestClient(t, db, "store-client", "store-secret", owner.ID)

	clientStore := NewGormClientStore(db)
	retrieved, err := clientStore.GetByID(context.Background(), "store-client")
	require.NoError(t, err)
	assert.Equal(t, "store-client", retrieved.GetID())
	assert.False(t, retrieved.IsPublic())
}
