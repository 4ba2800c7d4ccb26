package repositories

import (
	"errors"
	"fmt"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// All retrieves every product from the database, ordered by primary key.
func (r *GORMProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Find retrieves a single product by its id.
func (r *GORMProductRepository) Find(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// FindByName retrieves every product with the given name.
func (r *GORMProductRepository) FindByName(name string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products, "name = ?", name).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by name %q: %w", name, err)
	}
	return products, nil
}

// FindByCategory retrieves every product in the given category.
func (r *GORMProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products, "category = ?", category.String()).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by category %s: %w", category, err)
	}
	return products, nil
}

// FindByAvailability retrieves every product matching the availability flag.
func (r *GORMProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("id").Find(&products, "available = ?", available).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by availability: %w", err)
	}
	return products, nil
}

// Create inserts the product as a new row and populates its id.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update persists the product's fields to its existing row. A product that
// was never created has no row to update, so a zero id fails fast.
func (r *GORMProductRepository) Update(product *models.Product) error {
	if product.ID == 0 {
		return &models.DataValidationError{Field: "id", Message: "update called with no id: field id is missing"}
	}
	// Save falls back to an insert when the UPDATE hits no rows, which
	// would let a client conjure a row with an id of its choosing. An
	// explicit UPDATE keeps a missing row observable via RowsAffected.
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Select("*").Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
	}
	return nil
}

// Delete removes the product's row from the database.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	if product.ID == 0 {
		return &models.DataValidationError{Field: "id", Message: "delete called with no id: field id is missing"}
	}
	res := r.db.Delete(&models.Product{}, "id = ?", product.ID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
	}
	return nil
}
