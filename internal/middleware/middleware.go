package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/auth"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
)

// RequireAuth validates the Bearer token on protected routes and resolves
// its subject to a stored user. On success the request context carries the
// user under "currentUser" and its ID under "userID". Tokens minted for
// machine clients carry the same claim shape as user tokens, so both pass
// through here.
// Error responses follow the RFC 6750 error format.
func RequireAuth(tokens auth.TokenService, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// RFC 6750: Bearer token in the Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "authorization_required",
				"Missing Authorization header. A valid Bearer token is required.")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_request",
				"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token",
				"Bearer token is empty")
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token", tokenErrorDescription(err))
			return
		}

		// The subject claim carries the user's email for every token issuer.
		user, err := users.GetUserByEmail(claims.Subject)
		if err != nil {
			if services.IsNotFound(err) {
				respondWithOAuth2Error(c, http.StatusUnauthorized, "invalid_token",
					"Token subject is not a known user")
				return
			}
			respondWithOAuth2Error(c, http.StatusInternalServerError, "server_error",
				"Could not resolve token subject")
			return
		}

		c.Set("currentUser", user)
		c.Set("userID", user.ID)
		if len(claims.Audience) > 0 {
			c.Set("clientID", claims.Audience[0])
		}
		if claims.Scope != "" {
			c.Set("scopes", claims.Scope)
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get("currentUser")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.JSON(status, gin.H{
		"error":             errorCode,
		"error_description": description,
	})
	c.Abort()
}

func tokenErrorDescription(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, auth.ErrWrongTokenType):
		return "Refresh tokens cannot be used to access the API"
	default:
		return "Token validation failed"
	}
}
