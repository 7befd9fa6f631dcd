package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestPizza(t *testing.T, db *gorm.DB, name string, price int64, active bool) *models.Pizza {
	pizza := &models.Pizza{Name: name, Price: price, IsActive: active}
	require.NoError(t, db.Create(pizza).Error)
	return pizza
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, category string) *models.Ingredient {
	ingredient := &models.Ingredient{Name: name, Category: category}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

func linkPizzaIngredient(t *testing.T, db *gorm.DB, pizzaID, ingredientID uint) {
	link := &models.PizzaIngredient{PizzaID: pizzaID, IngredientID: ingredientID}
	require.NoError(t, db.Create(link).Error)
}

func TestCreatePizzaDefaultsToActive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	pizza, err := svc.CreatePizza(models.CreatePizzaRequest{Name: "Margherita", Price: 1099})
	require.NoError(t, err)
	assert.NotZero(t, pizza.ID)
	assert.True(t, pizza.IsActive)
	assert.NotNil(t, pizza.Ingredients)
	assert.Empty(t, pizza.Ingredients)
}

func TestCreatePizzaExplicitlyInactive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	inactive := false
	pizza, err := svc.CreatePizza(models.CreatePizzaRequest{Name: "Seasonal Special", Price: 1499, IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, pizza.IsActive)
}

func TestGetPizzaByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	_, err := svc.GetPizzaByID(9999)
	require.ErrorIs(t, err, ErrPizzaNotFound)
	assert.True(t, IsNotFound(err))
}

func TestGetAllPizzasCountsLiveAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)
	tomato := createTestIngredient(t, db, "Tomato Sauce", "sauce")
	cheese := createTestIngredient(t, db, "Mozzarella", "cheese")
	linkPizzaIngredient(t, db, pizza.ID, tomato.ID)

	pizzas, err := svc.GetAllPizzas(true)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, 1, pizzas[0].Summary().IngredientNumber)

	// The count reflects the associations at read time, not a stored column
	linkPizzaIngredient(t, db, pizza.ID, cheese.ID)

	pizzas, err = svc.GetAllPizzas(true)
	require.NoError(t, err)
	require.Len(t, pizzas, 1)
	assert.Equal(t, 2, pizzas[0].Summary().IngredientNumber)
}

func TestGetAllPizzasActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	createTestPizza(t, db, "Margherita", 1099, true)
	createTestPizza(t, db, "Retired Special", 1599, false)

	active, err := svc.GetAllPizzas(false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Margherita", active[0].Name)

	all, err := svc.GetAllPizzas(true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdatePizzaPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)

	newPrice := int64(1299)
	updated, err := svc.UpdatePizza(pizza.ID, models.UpdatePizzaRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", updated.Name)
	assert.EqualValues(t, 1299, updated.Price)
	assert.True(t, updated.IsActive)

	inactive := false
	updated, err = svc.UpdatePizza(pizza.ID, models.UpdatePizzaRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", updated.Name)
	assert.EqualValues(t, 1299, updated.Price)
	assert.False(t, updated.IsActive)
}

func TestUpdatePizzaNoFieldsIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)

	updated, err := svc.UpdatePizza(pizza.ID, models.UpdatePizzaRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", updated.Name)
	assert.EqualValues(t, 1099, updated.Price)
	assert.True(t, updated.IsActive)
}

func TestUpdatePizzaNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	name := "Ghost"
	_, err := svc.UpdatePizza(9999, models.UpdatePizzaRequest{Name: &name})
	require.ErrorIs(t, err, ErrPizzaNotFound)
}

func TestUpdatePizzaPreloadsIngredients(t *testing.T) {
	db := setupTestDB(t)
	svc := NewPizzaService(db)

	pizza := createTestPizza(t, db, "Margherita", 1099, true)
	tomato := createTestIngredient(t, db, "Tomato Sauce", "sauce")
	linkPizzaIngredient(t, db, pizza.ID, tomato.ID)

	newPrice := int64(1199)
	updated, err := svc.UpdatePizza(pizza.ID, models.UpdatePizzaRequest{Price: &newPrice})
	require.NoError(t, err)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Tomato Sauce", updated.Ingredients[0].Name)
}
