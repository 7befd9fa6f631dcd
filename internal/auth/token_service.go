package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token purposes carried in the "type" claim. Validation checks the claim so
// the two kinds of token are never interchangeable.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature or claim
	// validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for tokens past their expiry.
	ErrExpiredToken = errors.New("token expired")
	// ErrWrongTokenType is returned when a valid token of the other purpose
	// is presented, for example a refresh token on an API call.
	ErrWrongTokenType = errors.New("wrong token type")
)

// TokenClaims are the claims carried by every token this package issues.
// Subject holds the user's email address.
type TokenClaims struct {
	Type  string `json:"type"`
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the signed tokens used by the HTTP API.
type TokenService interface {
	GenerateAccessToken(subject string) (string, error)
	GenerateRefreshToken(subject string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
	ValidateRefreshToken(token string) (*TokenClaims, error)
}

type tokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *tokenService) GenerateAccessToken(subject string) (string, error) {
	return s.generate(subject, TokenTypeAccess, s.accessTTL)
}

func (s *tokenService) GenerateRefreshToken(subject string) (string, error) {
	return s.generate(subject, TokenTypeRefresh, s.refreshTTL)
}

func (s *tokenService) generate(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *tokenService) ValidateAccessToken(token string) (*TokenClaims, error) {
	return s.validate(token, TokenTypeAccess)
}

func (s *tokenService) ValidateRefreshToken(token string) (*TokenClaims, error) {
	return s.validate(token, TokenTypeRefresh)
}

func (s *tokenService) validate(token, wantType string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Type != wantType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
