package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService handles admin credential checks
type AdminAuthService struct{}

var adminAuthService = &AdminAuthService{}

// GetAdminAuthService returns the shared auth service
func GetAdminAuthService() *AdminAuthService {
	return adminAuthService
}

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements.
// Minimum 8 characters.
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 8
}
