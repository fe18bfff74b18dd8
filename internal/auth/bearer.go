package auth

import (
	"errors"
	"net/http"
	"strings"
)

// ErrMissingCredential is returned for every malformed Authorization header:
// absent header, wrong scheme, or empty token. A single kind so that probing
// cannot distinguish the cases.
var ErrMissingCredential = errors.New("missing authorization credential")

// GetBearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-sensitive.
func GetBearerToken(headers http.Header) (string, error) {
	return credential(headers, "Bearer ")
}

// GetAPIKey extracts the key from an "Authorization: ApiKey <key>" header.
func GetAPIKey(headers http.Header) (string, error) {
	return credential(headers, "ApiKey ")
}

func credential(headers http.Header, prefix string) (string, error) {
	header := headers.Get("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return "", ErrMissingCredential
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", ErrMissingCredential
	}
	return token, nil
}
