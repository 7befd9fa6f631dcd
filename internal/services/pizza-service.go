package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// PizzaService provides methods to interact with the pizza catalog
type PizzaService interface {
	// GetAllPizzas retrieves pizzas with their ingredients preloaded. When
	// includeInactive is false only active pizzas are returned.
	GetAllPizzas(includeInactive bool) ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza by its ID with ingredients preloaded
	GetPizzaByID(id uint) (*models.Pizza, error)
	// CreatePizza creates a new pizza in the catalog
	CreatePizza(req models.CreatePizzaRequest) (*models.Pizza, error)
	// UpdatePizza applies the non-nil fields of req to an existing pizza
	UpdatePizza(id uint, req models.UpdatePizzaRequest) (*models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(includeInactive bool) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	query := s.db.Preload("Ingredients").Order("id")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.Preload("Ingredients").First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPizzaNotFound
		}
		return nil, err
	}
	return &pizza, nil
}

func (s *pizzaService) CreatePizza(req models.CreatePizzaRequest) (*models.Pizza, error) {
	pizza := models.Pizza{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: true,
	}
	if req.IsActive != nil {
		pizza.IsActive = *req.IsActive
	}
	if err := s.db.Create(&pizza).Error; err != nil {
		return nil, err
	}
	pizza.Ingredients = []models.Ingredient{}
	return &pizza, nil
}

// UpdatePizza loads the pizza and applies only the provided fields, leaving
// everything else untouched. A request with no fields set is a no-op that
// still returns the current state.
func (s *pizzaService) UpdatePizza(id uint, req models.UpdatePizzaRequest) (*models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pizza, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPizzaNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&pizza).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetPizzaByID(id)
}
