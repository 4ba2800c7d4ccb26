package services

import (
	"fmt"
	"log"
	"time"

	"github.com/DBossKing001/tdd-bdd-final-project/internal/models"
	"github.com/DBossKing001/tdd-bdd-final-project/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates tokens for catalog editors. Reads on
// the catalog are public; only mutations require an editor token.
type AuthService struct {
	editorRepo repositories.EditorRepository
	jwtSecret  []byte
	tokenTTL   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(editorRepo repositories.EditorRepository, jwtSecret string) *AuthService {
	return &AuthService{
		editorRepo: editorRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenTTL:   24 * time.Hour,
	}
}

// RegisterEditor hashes the password and stores a new editor account.
func (s *AuthService) RegisterEditor(username, email, password string) (*models.Editor, error) {
	if existing, err := s.editorRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("username '%s' already taken", username)
	}
	if existing, err := s.editorRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	editor := &models.Editor{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.editorRepo.Create(editor); err != nil {
		return nil, fmt.Errorf("failed to register editor: %w", err)
	}
	return editor, nil
}

// LoginEditor authenticates an editor and returns a signed JWT.
func (s *AuthService) LoginEditor(username, password string) (string, error) {
	editor, err := s.editorRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(editor.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"editor_id": editor.ID,
		"username":  editor.Username,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
