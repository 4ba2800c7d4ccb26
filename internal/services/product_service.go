package services

import (
	"log"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
	"github.com/DBossKing001/tdd-bdd-final-project/internal/repositories"
)

// EventPublisher publishes catalog lifecycle events after mutations.
type EventPublisher interface {
	PublishProductEvent(action string, payload interface{}) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. The publisher may be nil,
// in which case no events are emitted.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.All()
}

// GetProductByID retrieves a single product by its id.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.Find(id)
}

// GetProductsByName retrieves all products with the given name.
func (s *ProductService) GetProductsByName(name string) ([]models.Product, error) {
	return s.repo.FindByName(name)
}

// GetProductsByCategory retrieves all products in the given category.
func (s *ProductService) GetProductsByCategory(category models.Category) ([]models.Product, error) {
	return s.repo.FindByCategory(category)
}

// GetProductsByAvailability retrieves all products matching the availability flag.
func (s *ProductService) GetProductsByAvailability(available bool) ([]models.Product, error) {
	return s.repo.FindByAvailability(available)
}

// CreateProduct inserts a new product and announces it on the event bus.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.publish("product.created", product)
	return nil
}

// UpdateProduct persists changes to an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if err := s.repo.Update(product); err != nil {
		return err
	}
	s.publish("product.updated", product)
	return nil
}

// DeleteProduct removes a product by its id.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.Find(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product); err != nil {
		return err
	}
	s.publish("product.deleted", product)
	return nil
}

// publish emits a catalog event. Publishing is best-effort: a broker
// failure is logged and never fails the persistence operation.
func (s *ProductService) publish(action string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProductEvent(action, product.Serialize()); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", action, product.ID, err)
	}
}
