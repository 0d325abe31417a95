package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-comments/internal/domain"
)

type SubscriptionService struct {
	mock.Mock
}

func (m *SubscriptionService) Unsubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TokenStatus), args.Error(1)
}

func (m *SubscriptionService) Resubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TokenStatus), args.Error(1)
}

func (m *SubscriptionService) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *SubscriptionService) UnsubscribeURL(email string) string {
	args := m.Called(email)
	return args.String(0)
}
