package token

import (
	"crypto/rand"
	"encoding/base64"
)

// Generate returns a crypto-secure random string of length n
// The random string contains the following characters:
// ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_
func Generate(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	// base64 increases size by ~33%, so n source bytes always encode
	// to at least n characters
	return base64.RawURLEncoding.EncodeToString(b)[0:n], nil
}
