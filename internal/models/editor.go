package models

// Editor is a catalog maintainer allowed to change products.
// PasswordHash holds a bcrypt hash, never the plain password.
type Editor struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string `json:"-" gorm:"type:varchar(255)"`
}
