package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// CustomJWTAccessGenerate produces access tokens for machine clients with
// the same claim shape the user-facing TokenService emits: sub carries the
// owning user's email and type is "access". The bearer middleware accepts
// both kinds of token without knowing where they were minted.
type CustomJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB
}

// NewCustomJWTAccessGenerate creates a new access token generator for the
// OAuth2 manager.
func NewCustomJWTAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *CustomJWTAccessGenerate {
	return &CustomJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token implements oauth2.AccessGenerate. The refresh half stays empty, the
// client_credentials grant only issues access tokens.
func (g *CustomJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	// For client_credentials the user comes from the client record, not the
	// token request.
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: no user bound to client %s", data.Client.GetID())
	}

	email, err := g.lookupUserEmail(userID)
	if err != nil {
		return "", "", fmt.Errorf("resolve client user: %w", err)
	}

	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := TokenClaims{
		Type:  TokenTypeAccess,
		Scope: data.TokenInfo.GetScope(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Audience:  jwt.ClaimStrings{data.Client.GetID()},
			IssuedAt:  jwt.NewNumericDate(createdAt),
			ExpiresAt: jwt.NewNumericDate(createdAt.Add(data.TokenInfo.GetAccessExpiresIn())),
			ID:        uuid.New().String(),
		},
	}

	access, err := jwt.NewWithClaims(g.SignedMethod, claims).SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}
	return access, "", nil
}

// lookupUserEmail resolves the email of the user a client acts for. Tokens
// always carry the email so one identity lookup path serves every caller.
func (g *CustomJWTAccessGenerate) lookupUserEmail(userIDStr string) (string, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID %q: %w", userIDStr, err)
	}

	var user models.User
	if err := g.DB.First(&user, uint(userID)).Error; err != nil {
		return "", fmt.Errorf("user %d: %w", userID, err)
	}
	return user.Email, nil
}
