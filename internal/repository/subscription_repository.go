package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

type SubscriptionRepository interface {
	// SetUnsubscribed upserts the opt-out state for an email.
	SetUnsubscribed(ctx context.Context, email string, unsubscribed bool) error
	// IsUnsubscribed reports whether the email has opted out. Absence of a
	// row means subscribed.
	IsUnsubscribed(ctx context.Context, email string) (bool, error)
}

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) SetUnsubscribed(ctx context.Context, email string, unsubscribed bool) error {
	query := `
		INSERT INTO subscriptions (email, unsubscribed)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET unsubscribed = $2, updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, strings.ToLower(email), unsubscribed)
	return err
}

func (r *subscriptionRepository) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	var unsubscribed bool
	query := `SELECT COALESCE(
		(SELECT unsubscribed FROM subscriptions WHERE email = $1), false)`
	err := r.db.GetContext(ctx, &unsubscribed, query, strings.ToLower(email))
	return unsubscribed, err
}
