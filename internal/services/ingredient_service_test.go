package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIngredient(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	ingredient, err := svc.CreateIngredient(models.CreateIngredientRequest{Name: "Mozzarella", Category: "cheese"})
	require.NoError(t, err)
	assert.NotZero(t, ingredient.ID)
	assert.Equal(t, "Mozzarella", ingredient.Name)
	assert.Equal(t, "cheese", ingredient.Category)
}

func TestGetIngredientByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.GetIngredientByID(9999)
	require.ErrorIs(t, err, ErrIngredientNotFound)
	assert.True(t, IsNotFound(err))
}

func TestUpdateIngredientPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	ingredient := createTestIngredient(t, db, "Mozzarella", "cheese")

	category := "dairy"
	updated, err := svc.UpdateIngredient(ingredient.ID, models.UpdateIngredientRequest{Category: &category})
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella", updated.Name)
	assert.Equal(t, "dairy", updated.Category)

	name := "Buffalo Mozzarella"
	updated, err = svc.UpdateIngredient(ingredient.ID, models.UpdateIngredientRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Buffalo Mozzarella", updated.Name)
	assert.Equal(t, "dairy", updated.Category)
}

func TestUpdateIngredientNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	name := "Ghost Pepper"
	_, err := svc.UpdateIngredient(9999, models.UpdateIngredientRequest{Name: &name})
	require.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestDeleteIngredientUnused(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	ingredient := createTestIngredient(t, db, "Pineapple", "fruit")

	deleted, err := svc.DeleteIngredient(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pineapple", deleted.Name)
	assert.Equal(t, ingredient.ID, deleted.ID)

	_, err = svc.GetIngredientByID(ingredient.ID)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestDeleteIngredientInUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)
	ingredient := createTestIngredient(t, db, "Mozzarella", "cheese")
	linkPizzaIngredient(t, db, pizza.ID, ingredient.ID)

	_, err := svc.DeleteIngredient(ingredient.ID)
	require.ErrorIs(t, err, ErrIngredientInUse)
	assert.True(t, IsConflict(err))

	// The blocked delete must leave the ingredient in place
	found, err := svc.GetIngredientByID(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella", found.Name)
}

func TestDeleteIngredientAfterUnlink(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)
	ingredient := createTestIngredient(t, db, "Mozzarella", "cheese")
	linkPizzaIngredient(t, db, pizza.ID, ingredient.ID)

	_, err := svc.DeleteIngredient(ingredient.ID)
	require.ErrorIs(t, err, ErrIngredientInUse)

	require.NoError(t, db.Where("pizza_id = ? AND ingredient_id = ?", pizza.ID, ingredient.ID).
		Delete(&models.PizzaIngredient{}).Error)

	deleted, err := svc.DeleteIngredient(ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mozzarella", deleted.Name)
}

func TestDeleteIngredientNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewIngredientService(db)

	_, err := svc.DeleteIngredient(9999)
	require.ErrorIs(t, err, ErrIngredientNotFound)
}
