package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents one entry in the catalog.
// Price is an exact decimal so monetary values survive a transport round
// trip without float drift.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description string          `json:"description" gorm:"type:varchar(250);not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Available   bool            `json:"available" gorm:"not null"`
	Category    Category        `json:"category" gorm:"type:varchar(63);not null"`
}

// TableName overrides the default GORM table name.
func (Product) TableName() string {
	return "products"
}

// ProductPayload is the transport mapping exchanged with external callers.
// Price marshals as a quoted decimal string and category as its canonical
// enum name.
type ProductPayload struct {
	ID          uint            `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    string          `json:"category"`
}

// Serialize produces the transport mapping for the product.
func (p *Product) Serialize() *ProductPayload {
	return &ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Available:   p.Available,
		Category:    p.Category.String(),
	}
}

// requiredFields are the transport keys every payload must carry.
// ID is deliberately absent: it is server-assigned and never read from input.
var requiredFields = []string{"name", "description", "price", "available", "category"}

// Deserialize populates every field except ID from a raw transport payload.
// It is all-or-nothing: when the payload fails validation the receiver is
// left exactly as it was, and the returned DataValidationError names the
// field or condition that failed.
func (p *Product) Deserialize(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &DataValidationError{
			Message: fmt.Sprintf("invalid type: product payload must be a JSON object: %v", err),
		}
	}
	// A JSON null unmarshals into a nil map without error.
	if fields == nil {
		return &DataValidationError{Message: "invalid type: product payload must be a JSON object"}
	}

	for _, key := range requiredFields {
		if _, ok := fields[key]; !ok {
			return &DataValidationError{Field: key, Message: "missing " + key}
		}
	}

	var next Product

	if err := json.Unmarshal(fields["name"], &next.Name); err != nil || next.Name == "" {
		return &DataValidationError{Field: "name", Message: "name must be a non-empty string"}
	}
	if err := json.Unmarshal(fields["description"], &next.Description); err != nil || next.Description == "" {
		return &DataValidationError{Field: "description", Message: "description must be a non-empty string"}
	}
	if err := json.Unmarshal(fields["price"], &next.Price); err != nil {
		return &DataValidationError{
			Field:   "price",
			Message: fmt.Sprintf("price must be a decimal value: %s", fields["price"]),
		}
	}
	if err := json.Unmarshal(fields["available"], &next.Available); err != nil {
		return &DataValidationError{
			Field:   "available",
			Message: fmt.Sprintf("available must be a boolean, got %s", fields["available"]),
		}
	}
	var categoryName string
	if err := json.Unmarshal(fields["category"], &categoryName); err != nil {
		return &DataValidationError{Field: "category", Message: "category must be a string"}
	}
	category, err := CategoryFromName(categoryName)
	if err != nil {
		return &DataValidationError{Field: "category", Message: err.Error()}
	}
	next.Category = category

	p.Name = next.Name
	p.Description = next.Description
	p.Price = next.Price
	p.Available = next.Available
	p.Category = next.Category
	return nil
}
