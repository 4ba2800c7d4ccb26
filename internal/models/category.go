package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Category classifies a product into one of a fixed set of labels.
// The zero value is Unknown.
type Category int

const (
	Unknown Category = iota
	Cloths
	Food
	Housewares
	Automotive
	Tools
)

var categoryNames = map[Category]string{
	Unknown:    "UNKNOWN",
	Cloths:     "CLOTHS",
	Food:       "FOOD",
	Housewares: "HOUSEWARES",
	Automotive: "AUTOMOTIVE",
	Tools:      "TOOLS",
}

var categoriesByName = func() map[string]Category {
	byName := make(map[string]Category, len(categoryNames))
	for category, name := range categoryNames {
		byName[name] = category
	}
	return byName
}()

// CategoryFromName looks up a category by its canonical name.
// Unrecognized names are an error, never silently mapped to Unknown.
func CategoryFromName(name string) (Category, error) {
	category, ok := categoriesByName[name]
	if !ok {
		return Unknown, fmt.Errorf("invalid category: %s", name)
	}
	return category, nil
}

// Categories returns every member of the enumeration.
func Categories() []Category {
	return []Category{Unknown, Cloths, Food, Housewares, Automotive, Tools}
}

// String returns the canonical name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[Unknown]
}

// MarshalJSON renders the category as its canonical name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON parses a canonical name, failing on anything unrecognized.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("category must be a string: %w", err)
	}
	category, err := CategoryFromName(name)
	if err != nil {
		return err
	}
	*c = category
	return nil
}

// Value stores the category as its canonical name string.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads a category back from its stored name. An empty or NULL column
// scans as Unknown, since no explicit value was ever supplied.
func (c *Category) Scan(src interface{}) error {
	var name string
	switch v := src.(type) {
	case nil:
		*c = Unknown
		return nil
	case string:
		name = v
	case []byte:
		name = string(v)
	default:
		return fmt.Errorf("cannot scan category from %T", src)
	}
	if name == "" {
		*c = Unknown
		return nil
	}
	category, err := CategoryFromName(name)
	if err != nil {
		return err
	}
	*c = category
	return nil
}
