package service

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks the admin password on the backend
type AuthService struct {
	passwordHash []byte
}

// NewAuthService creates a new auth service from a bcrypt hash
func NewAuthService(passwordHash string) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
	}
}

// CheckPassword verifies if provided password matches
func (s *AuthService) CheckPassword(password string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}
