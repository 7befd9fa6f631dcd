package models

import (
	"time"
)

// Pizza is a catalog item. Price is stored in the smallest currency unit
// (cents), so 1099 means 10.99 in the display currency. Pizzas are never
// hard-deleted; retiring one means clearing IsActive.
type Pizza struct {
	ID          uint         `gorm:"primaryKey"`
	Name        string       `gorm:"not null"`
	Price       int64        `gorm:"not null"`
	IsActive    bool         `gorm:"not null;default:true"`
	Ingredients []Ingredient `gorm:"many2many:pizza_ingredients"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PizzaSummary is the list projection of a pizza. IngredientNumber is the
// live association count at read time, never a stored column.
type PizzaSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Price            int64  `json:"price"`
	IsActive         bool   `json:"is_active"`
	IngredientNumber int    `json:"ingredient_number"`
}

// PizzaDetails is the full projection of a pizza including its ingredient
// list. Served by single-pizza reads and by create/update responses.
type PizzaDetails struct {
	PizzaSummary
	Ingredients []Ingredient `json:"ingredients"`
}

// Summary projects the pizza for list responses. Ingredients must be
// preloaded for the count to be meaningful.
func (p *Pizza) Summary() PizzaSummary {
	return PizzaSummary{
		ID:               p.ID,
		Name:             p.Name,
		Price:            p.Price,
		IsActive:         p.IsActive,
		IngredientNumber: len(p.Ingredients),
	}
}

// Details projects the pizza with its ingredient list. The slice is never
// nil so an ingredient-less pizza serializes as an empty array.
func (p *Pizza) Details() PizzaDetails {
	ingredients := p.Ingredients
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	return PizzaDetails{
		PizzaSummary: p.Summary(),
		Ingredients:  ingredients,
	}
}
