package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/franciscosanchezn/pizza-catalog-api/internal/services"
)

// IngredientController handles HTTP requests related to ingredients
type IngredientController interface {
	// GetIngredientByID retrieves a single ingredient
	GetIngredientByID(c *gin.Context)
	// CreateIngredient creates a new ingredient
	CreateIngredient(c *gin.Context)
	// UpdateIngredient partially updates an existing ingredient
	UpdateIngredient(c *gin.Context)
	// DeleteIngredient removes an unused ingredient
	DeleteIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) *ingredientController {
	return &ingredientController{service: service}
}

// GetIngredientByID godoc
// @Summary Get ingredient by ID
// @Description Get a single ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredients/{id} [get]
func (ic *ingredientController) GetIngredientByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return
	}

	ingredient, err := ic.service.GetIngredientByID(id)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Ingredient not found"))
			return
		}
		log.WithError(err).Error("Failed to retrieve ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredient"))
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// CreateIngredient godoc
// @Summary Create a new ingredient
// @Description Create a new ingredient with the input payload
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredient body models.CreateIngredientRequest true "Ingredient payload"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /ingredients [post]
func (ic *ingredientController) CreateIngredient(ctx *gin.Context) {
	var req models.CreateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid ingredient payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	ingredient, err := ic.service.CreateIngredient(req)
	if err != nil {
		log.WithError(err).Error("Failed to create ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create ingredient"))
		return
	}
	ctx.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Description Apply a partial update; omitted fields stay unchanged
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Param ingredient body models.UpdateIngredientRequest true "Fields to update"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredients/{id} [patch]
func (ic *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return
	}

	var req models.UpdateIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid ingredient payload",
			map[string]interface{}{"reason": err.Error()}))
		return
	}

	ingredient, err := ic.service.UpdateIngredient(id, req)
	if err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Ingredient not found"))
			return
		}
		log.WithError(err).Error("Failed to update ingredient")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update ingredient"))
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Description Delete an ingredient that no pizza currently uses
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /ingredients/{id} [delete]
func (ic *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return
	}

	ingredient, err := ic.service.DeleteIngredient(id)
	if err != nil {
		switch {
		case services.IsNotFound(err):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Ingredient not found"))
		case errors.Is(err, services.ErrIngredientInUse):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrConflict, "Cannot delete an ingredient in an active pizza"))
		default:
			log.WithError(err).Error("Failed to delete ingredient")
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete ingredient"))
		}
		return
	}

	detail := fmt.Sprintf("Ingredient %s with id %d deleted", ingredient.Name, ingredient.ID)
	ctx.JSON(http.StatusOK, models.NewCompletedResponse(detail))
}
