package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

func newTokenEndpoint(t *testing.T) (*gin.Engine, *OAuthService, *models.User) {
	db := setupTestDB(t)
	oauthService := NewOAuthService(db, testJWTSecret, time.Hour)

	owner := createTestUser(t, db, "owner@pizza.com")
	createTestClient(t, db, "cli-client", "cli-secret", owner.ID)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", oauthService.HandleToken)
	return router, oauthService, owner
}

func postTokenForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenEndpointIssuesAccessToken(t *testing.T) {
	router, _, _ := newTokenEndpoint(t)

	w := postTokenForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"cli-client"},
		"client_secret": {"cli-secret"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, "Bearer", response["token_type"])
	assert.Greater(t, response["expires_in"].(float64), float64(0))

	access, ok := response["access_token"].(string)
	require.True(t, ok)

	claims, err := NewTokenService(testJWTSecret, time.Hour, time.Hour).ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, "owner@pizza.com", claims.Subject)
}

func TestTokenEndpointRejectsWrongSecret(t *testing.T) {
	router, _, _ := newTokenEndpoint(t)

	w := postTokenForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"cli-client"},
		"client_secret": {"wrong-secret"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_client")
}

func TestTokenEndpointRejectsUnknownClient(t *testing.T) {
	router, _, _ := newTokenEndpoint(t)

	w := postTokenForm(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"nobody"},
		"client_secret": {"whatever"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_client")
}

func TestTokenEndpointRejectsOtherGrantTypes(t *testing.T) {
	router, _, _ := newTokenEndpoint(t)

	w := postTokenForm(router, url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {"cli-client"},
		"client_secret": {"cli-secret"},
		"code":          {"some-code"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported_grant_type")
}
