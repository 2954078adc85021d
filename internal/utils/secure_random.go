package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// JWTSecretBytes is the amount of entropy used for generated signing secrets.
const JWTSecretBytes = 32

// GenerateJWTSecret returns a random hex string suitable for JWT_SECRET.
func GenerateJWTSecret() (string, error) {
	b := make([]byte, JWTSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
