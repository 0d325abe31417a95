package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-comments/internal/domain"
)

type ReactionRepository struct {
	mock.Mock
}

func (m *ReactionRepository) Add(ctx context.Context, reaction *domain.Reaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *ReactionRepository) Remove(ctx context.Context, commentID int64, emojiKey, actorKey string) error {
	args := m.Called(ctx, commentID, emojiKey, actorKey)
	return args.Error(0)
}

func (m *ReactionRepository) GroupByComments(ctx context.Context, commentIDs []int64) (map[int64][]domain.ReactionGroup, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.ReactionGroup), args.Error(1)
}
