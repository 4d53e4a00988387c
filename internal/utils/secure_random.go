package utils

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// APITokenPrefix marks plaintext API tokens so they are recognisable in logs and secret scanners.
const APITokenPrefix = "lv_"

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	b, err := randomBytes(lengthInBytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateAPIToken returns a new prefixed, URL-safe API token.
func GenerateAPIToken() (string, error) {
	b, err := randomBytes(32)
	if err != nil {
		return "", err
	}
	return APITokenPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}

// APITokenHint returns the prefix and last four characters of token, for display.
func APITokenHint(token string) string {
	if len(token) <= len(APITokenPrefix)+4 {
		return APITokenPrefix + "..."
	}
	return APITokenPrefix + "..." + token[len(token)-4:]
}

func randomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
