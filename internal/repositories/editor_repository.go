package repositories

import "github.com/DBossKing001/tdd-bdd-final-project/internal/models"

// EditorRepository defines the interface for catalog editor data access.
type EditorRepository interface {
	Create(editor *models.Editor) error
	GetByUsername(username string) (*models.Editor, error)
	GetByEmail(email string) (*models.Editor, error)
}
