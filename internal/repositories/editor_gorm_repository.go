package repositories

import (
	"errors"
	"fmt"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"

	"gorm.io/gorm"
)

// GORMEditorRepository is a GORM implementation of EditorRepository.
type GORMEditorRepository struct {
	db *gorm.DB
}

// NewGORMEditorRepository creates a new instance of GORMEditorRepository.
func NewGORMEditorRepository(db *gorm.DB) *GORMEditorRepository {
	return &GORMEditorRepository{
		db: db,
	}
}

// Create inserts a new editor.
func (r *GORMEditorRepository) Create(editor *models.Editor) error {
	if err := r.db.Create(editor).Error; err != nil {
		return fmt.Errorf("failed to create editor: %w", err)
	}
	return nil
}

// GetByUsername retrieves an editor by username.
func (r *GORMEditorRepository) GetByUsername(username string) (*models.Editor, error) {
	var editor models.Editor
	if err := r.db.First(&editor, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("editor with username %s not found", username)
		}
		return nil, fmt.Errorf("failed to get editor by username %s: %w", username, err)
	}
	return &editor, nil
}

// GetByEmail retrieves an editor by email.
func (r *GORMEditorRepository) GetByEmail(email string) (*models.Editor, error) {
	var editor models.Editor
	if err := r.db.First(&editor, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("editor with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to get editor by email %s: %w", email, err)
	}
	return &editor, nil
}
