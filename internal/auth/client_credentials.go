package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-oauth2/oauth2/v4"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// HandleToken handles the token endpoint for machine clients
// @Summary Token Endpoint
// @Description Obtain an access token using the client_credentials grant
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type, must be client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	if grantType := c.PostForm("grant_type"); grantType != "client_credentials" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_grant_type"})
		return
	}
	o.handleClientCredentials(c)
}

func (o *OAuthService) handleClientCredentials(c *gin.Context) {
	clientID := c.PostForm("client_id")
	clientSecret := c.PostForm("client_secret")

	var client models.OAuthClient
	if err := o.db.Where("id = ?", clientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_client"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	if !client.VerifyPassword(clientSecret) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_client"})
		return
	}

	ti, err := o.server.Manager.GenerateAccessToken(c, oauth2.ClientCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scope:        client.Scopes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token_generation_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": ti.GetAccess(),
		"token_type":   "Bearer",
		"expires_in":   int64(ti.GetAccessExpiresIn().Seconds()),
		"scope":        ti.GetScope(),
	})
}
