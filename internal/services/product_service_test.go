package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
	"github.com/DBossKing001/tdd-bdd-final-project/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) All() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Find(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(name string) ([]models.Product, error) {
	args := m.Called(name)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(category models.Category) ([]models.Product, error) {
	args := m.Called(category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByAvailability(available bool) ([]models.Product, error) {
	args := m.Called(available)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of services.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishProductEvent(action string, payload interface{}) error {
	args := m.Called(action, payload)
	return args.Error(0)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Hat", Price: price("59.95"), Available: true, Category: models.Cloths},
		{ID: 2, Name: "Hammer", Price: price("14.50"), Available: false, Category: models.Tools},
	}

	mockRepo.On("All").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Hat", Price: price("59.95"), Available: true, Category: models.Cloths}

	// Test successful retrieval
	mockRepo.On("Find", uint(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("Find", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByFilters(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	hats := []models.Product{{ID: 1, Name: "Hat", Category: models.Cloths, Available: true}}

	mockRepo.On("FindByName", "Hat").Return(hats, nil).Once()
	products, err := service.GetProductsByName("Hat")
	assert.NoError(t, err)
	assert.Equal(t, hats, products)

	mockRepo.On("FindByCategory", models.Cloths).Return(hats, nil).Once()
	products, err = service.GetProductsByCategory(models.Cloths)
	assert.NoError(t, err)
	assert.Equal(t, hats, products)

	mockRepo.On("FindByAvailability", true).Return(hats, nil).Once()
	products, err = service.GetProductsByAvailability(true)
	assert.NoError(t, err)
	assert.Equal(t, hats, products)

	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	newProduct := &models.Product{Name: "Wrench", Price: price("12.00"), Available: true, Category: models.Tools}

	// Test successful creation publishes a product.created event
	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.Anything).Return(nil).Once()
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test creation failure publishes nothing
	mockRepo.On("Create", newProduct).Return(fmt.Errorf("database error")).Once()
	err = service.CreateProduct(newProduct)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProductSurvivesPublishFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	newProduct := &models.Product{Name: "Wrench", Price: price("12.00"), Available: true, Category: models.Tools}

	mockRepo.On("Create", newProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	// Event publishing is best-effort; the create still succeeds.
	err := service.CreateProduct(newProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	updatedProduct := &models.Product{ID: 1, Name: "Hat", Description: "Updated", Price: price("60.00"), Available: true, Category: models.Cloths}

	// Test successful update
	mockRepo.On("Update", updatedProduct).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.updated", mock.Anything).Return(nil).Once()
	err := service.UpdateProduct(updatedProduct)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test update on a record that was never created
	unsaved := &models.Product{Name: "Unsaved", Price: price("1.00")}
	mockRepo.On("Update", unsaved).Return(&models.DataValidationError{Field: "id", Message: "update called with no id: field id is missing"}).Once()
	err = service.UpdateProduct(unsaved)
	assert.Error(t, err)
	assert.True(t, models.IsDataValidationError(err))
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockEventPublisher)
	service := services.NewProductService(mockRepo, mockPublisher)

	product := &models.Product{ID: 1, Name: "Hat", Price: price("59.95"), Available: true, Category: models.Cloths}

	// Test successful deletion
	mockRepo.On("Find", uint(1)).Return(product, nil).Once()
	mockRepo.On("Delete", product).Return(nil).Once()
	mockPublisher.On("PublishProductEvent", "product.deleted", mock.Anything).Return(nil).Once()
	err := service.DeleteProduct(1)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)

	// Test deletion of a missing product
	mockRepo.On("Find", uint(99)).Return(nil, fmt.Errorf("product with ID 99: %w", models.ErrNotFound)).Once()
	err = service.DeleteProduct(99)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNotFound))
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}
