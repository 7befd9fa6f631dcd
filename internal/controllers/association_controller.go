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

// AssociationController links ingredients to pizzas and removes the links
type AssociationController interface {
	// AddIngredientToPizza creates the association between a pizza and an ingredient
	AddIngredientToPizza(c *gin.Context)
	// RemoveIngredientFromPizza deletes the association
	RemoveIngredientFromPizza(c *gin.Context)
}

type associationController struct {
	service services.AssociationService
}

// NewAssociationController creates a new instance of AssociationController
func NewAssociationController(service services.AssociationService) *associationController {
	return &associationController{service: service}
}

func (ac *associationController) parsePair(ctx *gin.Context) (pizzaID, ingredientID uint, ok bool) {
	pizzaID, ok = parseIDParam(ctx, "pizza_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid pizza ID format"))
		return 0, 0, false
	}
	ingredientID, ok = parseIDParam(ctx, "ingredient_id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ingredient ID format"))
		return 0, 0, false
	}
	return pizzaID, ingredientID, true
}

// AddIngredientToPizza godoc
// @Summary Add an ingredient to a pizza
// @Description Link an existing ingredient to an existing pizza
// @Tags associations
// @Accept json
// @Produce json
// @Param pizza_id path int true "Pizza ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 201 {object} models.PizzaIngredient
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizzas/ingredients/{pizza_id}/{ingredient_id} [post]
func (ac *associationController) AddIngredientToPizza(ctx *gin.Context) {
	pizzaID, ingredientID, ok := ac.parsePair(ctx)
	if !ok {
		return
	}

	association, err := ac.service.CreateAssociation(pizzaID, ingredientID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPizzaNotFound):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Pizza not found"))
		case errors.Is(err, services.ErrIngredientNotFound):
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Ingredient not found"))
		case errors.Is(err, services.ErrAssociationExists):
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrConflict, "Association already exists"))
		default:
			log.WithError(err).Error("Failed to create association")
			ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create association"))
		}
		return
	}

	ctx.JSON(http.StatusCreated, association)
}

// RemoveIngredientFromPizza godoc
// @Summary Remove an ingredient from a pizza
// @Description Delete the link between a pizza and an ingredient
// @Tags associations
// @Accept json
// @Produce json
// @Param pizza_id path int true "Pizza ID"
// @Param ingredient_id path int true "Ingredient ID"
// @Success 200 {object} models.StatusResponse
// @Failure 400 {object} models.APIError
// @Failure 401 {object} map[string]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /pizzas/ingredients/{pizza_id}/{ingredient_id} [delete]
func (ac *associationController) RemoveIngredientFromPizza(ctx *gin.Context) {
	pizzaID, ingredientID, ok := ac.parsePair(ctx)
	if !ok {
		return
	}

	if err := ac.service.DeleteAssociation(pizzaID, ingredientID); err != nil {
		if services.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Association not found"))
			return
		}
		log.WithError(err).Error("Failed to delete association")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete association"))
		return
	}

	detail := fmt.Sprintf("Ingredient %d removed from pizza %d", ingredientID, pizzaID)
	ctx.JSON(http.StatusOK, models.NewCompletedResponse(detail))
}
