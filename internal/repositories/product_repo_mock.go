package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// A monotonic counter stands in for the database's auto-increment key.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// All returns every product, ordered by id.
func (r *MockProductRepository) All() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// Find returns a product by its id.
func (r *MockProductRepository) Find(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// FindByName returns every product with the given name.
func (r *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Name == name })
}

// FindByCategory returns every product in the given category.
func (r *MockProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Category == category })
}

// FindByAvailability returns every product matching the availability flag.
func (r *MockProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return p.Available == available })
}

func (r *MockProductRepository) filter(keep func(models.Product) bool) ([]models.Product, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Product, 0, len(all))
	for _, p := range all {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Create adds a new product and assigns it an id.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	} else if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		return &models.DataValidationError{Field: "id", Message: "update called with no id: field id is missing"}
	}
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product.
func (r *MockProductRepository) Delete(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		return &models.DataValidationError{Field: "id", Message: "delete called with no id: field id is missing"}
	}
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product with ID %d: %w", product.ID, models.ErrNotFound)
	}
	delete(r.products, product.ID)
	return nil
}
