package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// IngredientService provides methods to interact with the ingredient registry
type IngredientService interface {
	// GetIngredientByID retrieves an ingredient by its ID
	GetIngredientByID(id uint) (*models.Ingredient, error)
	// CreateIngredient creates a new ingredient
	CreateIngredient(req models.CreateIngredientRequest) (*models.Ingredient, error)
	// UpdateIngredient applies the non-nil fields of req to an existing ingredient
	UpdateIngredient(id uint, req models.UpdateIngredientRequest) (*models.Ingredient, error)
	// DeleteIngredient removes an ingredient that is not referenced by any
	// pizza and returns the deleted record
	DeleteIngredient(id uint) (*models.Ingredient, error)
}

type ingredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *ingredientService) CreateIngredient(req models.CreateIngredientRequest) (*models.Ingredient, error) {
	ingredient := models.Ingredient{
		Name:     req.Name,
		Category: req.Category,
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *ingredientService) UpdateIngredient(id uint, req models.UpdateIngredientRequest) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ingredient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&ingredient).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// DeleteIngredient deletes the ingredient inside a transaction. The lookup,
// the membership check and the delete share one transaction so a concurrent
// association cannot slip between them.
func (s *ingredientService) DeleteIngredient(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ingredient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIngredientNotFound
			}
			return err
		}

		var references int64
		if err := tx.Model(&models.PizzaIngredient{}).Where("ingredient_id = ?", id).Count(&references).Error; err != nil {
			return err
		}
		if references > 0 {
			return ErrIngredientInUse
		}

		if err := tx.Delete(&models.Ingredient{}, id).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return ErrIngredientInUse
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ingredient, nil
}
