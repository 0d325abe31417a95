package subscription

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"blog-comments/internal/domain"
)

// Token is a stateless bearer capability authorizing email opt-out without a
// login: an HMAC-SHA256 signature over "email:expiryEpochSeconds" with the
// shared site secret, carried alongside the plaintext email and expiry in
// the callback URL.
type Token struct {
	Email     string
	Signature string
	ExpiresAt int64
}

func sign(secret, email string, expiresAt int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%d", email, expiresAt)
	return hex.EncodeToString(mac.Sum(nil))
}

// GenerateToken signs an unsubscribe token valid for ttlDays from now.
func GenerateToken(secret, email string, ttlDays int, now time.Time) Token {
	expiresAt := now.Add(time.Duration(ttlDays) * 24 * time.Hour).Unix()
	return Token{
		Email:     email,
		Signature: sign(secret, email, expiresAt),
		ExpiresAt: expiresAt,
	}
}

// VerifyToken checks expiry before the signature: an expired token reports
// expired no matter what the signature says. The signature comparison is
// constant-time.
func VerifyToken(secret, email, signature string, expiresAt int64, now time.Time) domain.TokenStatus {
	if now.Unix() > expiresAt {
		return domain.TokenExpired
	}
	expected := sign(secret, email, expiresAt)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return domain.TokenInvalid
	}
	return domain.TokenValid
}

// URL builds the unsubscribe callback link embedded in notification emails.
func (t Token) URL(siteURL string) string {
	return fmt.Sprintf("%s/unsubscribe?email=%s&signature=%s&expires_at=%d",
		siteURL, url.QueryEscape(t.Email), t.Signature, t.ExpiresAt)
}
