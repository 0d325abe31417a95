package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) SetUnsubscribed(ctx context.Context, email string, unsubscribed bool) error {
	args := m.Called(ctx, email, unsubscribed)
	return args.Error(0)
}

func (m *SubscriptionRepository) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
