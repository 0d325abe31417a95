// Package avatar derives gravatar URLs from email addresses.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// URL returns the gravatar URL for an email, falling back to the "mystery
// person" image for unknown addresses. An empty email yields the default
// image directly.
func URL(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return baseURL + "?d=mp"
	}
	sum := md5.Sum([]byte(email))
	return baseURL + hex.EncodeToString(sum[:]) + "?d=mp"
}
