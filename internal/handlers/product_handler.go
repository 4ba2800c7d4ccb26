package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
	"github.com/DBossKing001/tdd-bdd-final-project/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterPublicRoutes registers the read-only product routes.
// Register these before mounting the auth middleware so reads stay public.
func (h *ProductHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
}

// RegisterProtectedRoutes registers the mutating product routes.
func (h *ProductHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/products", h.HandleCreateProduct)
	router.Put("/products/:id", h.HandleUpdateProduct)
	router.Delete("/products/:id", h.HandleDeleteProduct)
}

// HandleListProducts retrieves products, optionally filtered by the
// name, category, or available query parameters.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var (
		products []models.Product
		err      error
	)

	switch {
	case c.Query("name") != "":
		products, err = h.service.GetProductsByName(c.Query("name"))
	case c.Query("category") != "":
		category, lookupErr := models.CategoryFromName(c.Query("category"))
		if lookupErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": lookupErr.Error(),
			})
		}
		products, err = h.service.GetProductsByCategory(category)
	case c.Query("available") != "":
		available, parseErr := strconv.ParseBool(c.Query("available"))
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "available must be a boolean",
			})
		}
		products, err = h.service.GetProductsByAvailability(available)
	default:
		products, err = h.service.GetAllProducts()
	}

	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	payloads := make([]*models.ProductPayload, len(products))
	for i := range products {
		payloads[i] = products[i].Serialize()
	}
	return c.JSON(payloads)
}

// HandleGetProductByID retrieves a single product by its id.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be a positive integer",
		})
	}

	product, err := h.service.GetProductByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error getting product by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product.Serialize())
}

// HandleCreateProduct creates a new product from the request payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := product.Deserialize(c.Body()); err != nil {
		log.Printf("Error deserializing product payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product payload",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}

	c.Location(c.Path() + "/" + strconv.FormatUint(uint64(product.ID), 10))
	return c.Status(fiber.StatusCreated).JSON(product.Serialize())
}

// HandleUpdateProduct replaces the fields of an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be a positive integer",
		})
	}

	var product models.Product
	if err := product.Deserialize(c.Body()); err != nil {
		log.Printf("Error deserializing product payload: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product payload",
			"error":   err.Error(),
		})
	}
	// The key comes from the URL, never from the payload.
	product.ID = id

	if err := h.service.UpdateProduct(&product); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product.Serialize())
}

// HandleDeleteProduct removes a product. Deleting an id that is already
// gone still returns 204 so the operation stays idempotent.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product id must be a positive integer",
		})
	}

	if err := h.service.DeleteProduct(id); err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid product id")
	}
	return uint(id), nil
}
