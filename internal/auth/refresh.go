package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// MakeRefreshToken generates an opaque 256-bit random token. Unlike an access
// token it carries no structure and proves nothing by itself; validity lives
// entirely in the store.
func MakeRefreshToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
