package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-comments/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) CommentCreated(ctx context.Context, comment *domain.Comment) {
	m.Called(ctx, comment)
}
