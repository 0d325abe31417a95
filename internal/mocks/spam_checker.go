package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog-comments/internal/service/spam"
)

type SpamChecker struct {
	mock.Mock
}

func (m *SpamChecker) Check(ctx context.Context, candidate spam.Candidate) (bool, error) {
	args := m.Called(ctx, candidate)
	return args.Bool(0), args.Error(1)
}
