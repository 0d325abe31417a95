package domain

import "time"

// Subscription tracks email notification opt-out. Absence of a row means
// subscribed.
type Subscription struct {
	Email        string    `json:"email" db:"email"`
	Unsubscribed bool      `json:"unsubscribed" db:"unsubscribed"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// TokenStatus is the outcome of verifying an unsubscribe token.
type TokenStatus string

const (
	TokenValid   TokenStatus = "valid"
	TokenExpired TokenStatus = "expired"
	TokenInvalid TokenStatus = "invalid"
)

type UnsubscribeInput struct {
	Email     string `json:"email" validate:"required,email"`
	Signature string `json:"signature" validate:"required"`
	ExpiresAt int64  `json:"expires_at" validate:"required"`
}
