package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Hasher adapts the package functions to the service port.
type Hasher struct{}

func (Hasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (Hasher) Compare(hash, password string) bool {
	return CheckPassword(hash, password)
}
