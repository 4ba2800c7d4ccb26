package main

import (
	"testing"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOpenDatabaseSQLite(t *testing.T) {
	db, err := openDatabase("file:maintest?mode=memory&cache=shared")
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// The schema the app migrates at startup applies cleanly.
	assert.NoError(t, db.AutoMigrate(&models.Product{}, &models.Editor{}))
}
