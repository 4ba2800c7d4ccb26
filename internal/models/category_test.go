package models_test

import (
	"encoding/json"
	"testing"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromName(t *testing.T) {
	category, err := models.CategoryFromName("FOOD")
	assert.NoError(t, err)
	assert.Equal(t, models.Food, category)

	_, err = models.CategoryFromName("ELECTRONICS")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")

	// lookup is case-sensitive; only canonical names match
	_, err = models.CategoryFromName("food")
	assert.Error(t, err)
}

func TestCategoryJSONUsesCanonicalName(t *testing.T) {
	data, err := json.Marshal(models.Housewares)
	assert.NoError(t, err)
	assert.Equal(t, `"HOUSEWARES"`, string(data))

	var category models.Category
	assert.NoError(t, json.Unmarshal([]byte(`"AUTOMOTIVE"`), &category))
	assert.Equal(t, models.Automotive, category)

	assert.Error(t, json.Unmarshal([]byte(`"GADGETS"`), &category))
	assert.Error(t, json.Unmarshal([]byte(`3`), &category))
}

func TestCategoryScanDefaultsToUnknown(t *testing.T) {
	var category models.Category

	assert.NoError(t, category.Scan(nil))
	assert.Equal(t, models.Unknown, category)

	assert.NoError(t, category.Scan("TOOLS"))
	assert.Equal(t, models.Tools, category)

	assert.NoError(t, category.Scan([]byte("CLOTHS")))
	assert.Equal(t, models.Cloths, category)

	assert.Error(t, category.Scan("NOT_A_CATEGORY"))
}
