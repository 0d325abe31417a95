package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-comments/internal/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) SoftDeleteCascade(ctx context.Context, id int64) ([]int64, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *CommentRepository) ListRoots(ctx context.Context, path string, limit, offset int, sortBy string, includeSpam bool) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, path, limit, offset, sortBy, includeSpam)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}

func (m *CommentRepository) ListReplies(ctx context.Context, parentID int64, limit, offset int, includeSpam bool) ([]domain.Comment, int64, error) {
	args := m.Called(ctx, parentID, limit, offset, includeSpam)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.Get(1).(int64), args.Error(2)
}
