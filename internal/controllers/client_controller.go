package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
)

// ClientController manages the machine clients owned by the calling user.
type ClientController struct {
	clientService services.ClientService
}

func NewClientController(clientService services.ClientService) *ClientController {
	return &ClientController{clientService: clientService}
}

// CreateClient godoc
// @Summary Create OAuth2 client
// @Description Register a machine client for the client_credentials grant. The secret is only returned once.
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param client body object{name=string,domain=string} true "Client details"
// @Success 201 {object} map[string]interface{} "Client created with client_id and client_secret"
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /oauth/clients [post]
func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		Name   string `json:"name" binding:"required"`
		Domain string `json:"domain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid client payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	client, secret, err := cc.clientService.CreateClient(c.GetUint("userID"), req.Name, req.Domain)
	if err != nil {
		log.WithError(err).Error("Client creation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create client"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"client_id":     client.ID,
		"client_secret": secret, // Return plain secret only once
		"name":          client.Name,
		"domain":        client.Domain,
		"scopes":        client.Scopes,
	})
}

// ListClients godoc
// @Summary List OAuth2 clients
// @Description Get all machine clients owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Success 200 {array} models.OAuthClient
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /oauth/clients [get]
func (cc *ClientController) ListClients(c *gin.Context) {
	clients, err := cc.clientService.GetClientsByUserID(c.GetUint("userID"))
	if err != nil {
		log.WithError(err).Error("Client listing failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve clients"))
		return
	}

	c.JSON(http.StatusOK, clients)
}

// DeleteClient godoc
// @Summary Delete OAuth2 client
// @Description Delete a machine client owned by the authenticated user
// @Tags OAuth2 Clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 204 "Client deleted successfully"
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /oauth/clients/{id} [delete]
func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")

	if err := cc.clientService.DeleteClient(clientID, c.GetUint("userID")); err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Client not found"))
			return
		}
		log.WithError(err).Error("Client deletion failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete client"))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
