package models

import (
	"time"
)

// Ingredient is a catalog building block. The Pizzas back-reference is the
// set of pizzas currently using the ingredient; an ingredient with a
// non-empty set cannot be deleted.
type Ingredient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Category  string    `json:"category"`
	Pizzas    []Pizza   `gorm:"many2many:pizza_ingredients" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
