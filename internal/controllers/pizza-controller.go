package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves the catalog as summary rows
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza with its ingredient list
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza partially updates an existing pizza
	UpdatePizza(c *gin.Context)
}

// controller is the implementation of the PizzaController interface
type controller struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) *controller {
	return &controller{service: service}
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza as a summary row with its live ingredient count
// @Tags pizzas
// @Accept json
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 401 {object} map[string]string
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /pizzas [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	// The catalog always serves the full list; the active-only filter is a
	// store-level option not exposed on this route.
	pizzas, err := c.service.GetAllPizzas(true)
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizzas"))
		return
	}

	summaries := make([]models.PizzaSummary, 0, len(pizzas))
	for i := range pizzas {
		summaries = append(summaries, pizzas[i].Summary())
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with its full ingredient list
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaDetails
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Pizza not found"))
			return
		}
		log.WithError(err).Error("Failed to retrieve pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, pizza.Details())
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.CreatePizzaRequest true "Pizza payload"
// @Success 201 {object} models.PizzaDetails
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var req models.CreatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid pizza payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	pizza, err := c.service.CreatePizza(req)
	if err != nil {
		log.WithError(err).Error("Failed to create pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create pizza"))
		return
	}
	ctx.JSON(http.StatusCreated, pizza.Details())
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Apply a partial update; omitted fields stay unchanged
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body models.UpdatePizzaRequest true "Fields to update"
// @Success 200 {object} models.PizzaDetails
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /pizzas/{id} [patch]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return
	}

	var req models.UpdatePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid pizza payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	pizza, err := c.service.UpdatePizza(id, req)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Pizza not found"))
			return
		}
		log.WithError(err).Error("Failed to update pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update pizza"))
		return
	}
	ctx.JSON(http.StatusOK, pizza.Details())
}
