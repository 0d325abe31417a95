package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blog-comments/internal/domain"
)

const testSecret = "test-secret"

func TestVerifyToken(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token := GenerateToken(testSecret, "a@x.com", 14, now)

	t.Run("valid token", func(t *testing.T) {
		status := VerifyToken(testSecret, token.Email, token.Signature, token.ExpiresAt, now)
		assert.Equal(t, domain.TokenValid, status)
	})

	t.Run("expired regardless of signature", func(t *testing.T) {
		after := time.Unix(token.ExpiresAt, 0).Add(time.Second)
		status := VerifyToken(testSecret, token.Email, token.Signature, token.ExpiresAt, after)
		assert.Equal(t, domain.TokenExpired, status)

		// Even a garbage signature reports expired, not invalid.
		status = VerifyToken(testSecret, token.Email, "bogus", token.ExpiresAt, after)
		assert.Equal(t, domain.TokenExpired, status)
	})

	t.Run("tampered email", func(t *testing.T) {
		status := VerifyToken(testSecret, "b@x.com", token.Signature, token.ExpiresAt, now)
		assert.Equal(t, domain.TokenInvalid, status)
	})

	t.Run("tampered expiry", func(t *testing.T) {
		status := VerifyToken(testSecret, token.Email, token.Signature, token.ExpiresAt+3600, now)
		assert.Equal(t, domain.TokenInvalid, status)
	})

	t.Run("wrong secret", func(t *testing.T) {
		status := VerifyToken("other-secret", token.Email, token.Signature, token.ExpiresAt, now)
		assert.Equal(t, domain.TokenInvalid, status)
	})
}

func TestTokenURL(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	token := GenerateToken(testSecret, "a+tag@x.com", 7, now)

	url := token.URL("https://blog.example.com")
	assert.Contains(t, url, "https://blog.example.com/unsubscribe?")
	assert.Contains(t, url, "email=a%2Btag%40x.com")
	assert.Contains(t, url, "signature="+token.Signature)
}
