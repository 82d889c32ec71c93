// Package crypto hashes system secrets before they are written to storage.
package crypto

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost bcrypt cost used for system secrets
const DefaultCost = bcrypt.DefaultCost

// ErrSecretMismatch is returned when a plain secret does not match its hash
var ErrSecretMismatch = errors.New("secret does not match hash")

// HashSecret хеширует секрет через bcrypt
// Соль генерируется bcrypt и хранится внутри хеша
func HashSecret(secret []byte, cost int) (string, error) {
	if len(secret) == 0 {
		return "", fmt.Errorf("secret cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword(secret, cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hash), nil
}

// VerifySecret проверяет, соответствует ли секрет сохраненному хешу
func VerifySecret(secret []byte, hashed string) error {
	if len(secret) == 0 {
		return fmt.Errorf("secret cannot be empty")
	}
	if hashed == "" {
		return fmt.Errorf("hashed secret cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), secret)
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrSecretMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to verify secret: %w", err)
	}

	return nil
}

// IsHashed reports whether s looks like a bcrypt hash
func IsHashed(s string) bool {
	if !strings.HasPrefix(s, "$2") {
		return false
	}
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
