package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// AssociationService manages the links between pizzas and ingredients
type AssociationService interface {
	// GetAssociation retrieves the link between a pizza and an ingredient
	GetAssociation(pizzaID, ingredientID uint) (*models.PizzaIngredient, error)
	// CreateAssociation links an ingredient to a pizza. Both records must
	// exist and the pair must not be linked already.
	CreateAssociation(pizzaID, ingredientID uint) (*models.PizzaIngredient, error)
	// DeleteAssociation removes the link between a pizza and an ingredient
	DeleteAssociation(pizzaID, ingredientID uint) error
}

type associationService struct {
	db *gorm.DB
}

func NewAssociationService(db *gorm.DB) AssociationService {
	return &associationService{db: db}
}

func (s *associationService) GetAssociation(pizzaID, ingredientID uint) (*models.PizzaIngredient, error) {
	var association models.PizzaIngredient
	err := s.db.Where("pizza_id = ? AND ingredient_id = ?", pizzaID, ingredientID).First(&association).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssociationNotFound
		}
		return nil, err
	}
	return &association, nil
}

// CreateAssociation verifies both endpoints inside the transaction and then
// inserts the join row. Duplicates are rejected by the composite primary key
// rather than a prior read, so two concurrent inserts cannot both succeed.
func (s *associationService) CreateAssociation(pizzaID, ingredientID uint) (*models.PizzaIngredient, error) {
	association := models.PizzaIngredient{
		PizzaID:      pizzaID,
		IngredientID: ingredientID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var pizza models.Pizza
		if err := tx.Select("id").First(&pizza, pizzaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPizzaNotFound
			}
			return err
		}

		var ingredient models.Ingredient
		if err := tx.Select("id").First(&ingredient, ingredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}

		if err := tx.Create(&association).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAssociationExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &association, nil
}

func (s *associationService) DeleteAssociation(pizzaID, ingredientID uint) error {
	result := s.db.Where("pizza_id = ? AND ingredient_id = ?", pizzaID, ingredientID).
		Delete(&models.PizzaIngredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssociationNotFound
	}
	return nil
}
