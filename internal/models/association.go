package models

import (
	"time"
)

// PizzaIngredient is the join row linking one pizza to one ingredient.
// The composite primary key makes the (pizza_id, ingredient_id) pair
// unique at the database level, so duplicate associations are rejected by
// the store no matter how requests interleave.
type PizzaIngredient struct {
	PizzaID      uint      `gorm:"primaryKey" json:"pizza_id"`
	IngredientID uint      `gorm:"primaryKey" json:"ingredient_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (PizzaIngredient) TableName() string {
	return "pizza_ingredients"
}
