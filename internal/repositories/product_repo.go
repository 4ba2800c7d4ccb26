package repositories

import (
	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
)

// ProductRepository defines the interface for product data access.
// Lookups for an absent id return an error wrapping models.ErrNotFound.
type ProductRepository interface {
	All() ([]models.Product, error)
	Find(id uint) (*models.Product, error)
	FindByName(name string) ([]models.Product, error)
	FindByCategory(category models.Category) ([]models.Product, error)
	FindByAvailability(available bool) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
}
