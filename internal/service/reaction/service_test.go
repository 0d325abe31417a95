package reaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blog-comments/internal/domain"
	"blog-comments/internal/mocks"
)

func newTestService(t *testing.T) (Service, *mocks.ReactionRepository, *mocks.CommentRepository) {
	t.Helper()
	reactionRepo := new(mocks.ReactionRepository)
	commentRepo := new(mocks.CommentRepository)
	return NewService(reactionRepo, commentRepo, nil), reactionRepo, commentRepo
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	target := &domain.Comment{ID: 7, Path: "/post/1"}

	t.Run("canonicalizes the emoji before storing", func(t *testing.T) {
		svc, reactionRepo, commentRepo := newTestService(t)
		commentRepo.On("GetByID", ctx, int64(7)).Return(target, nil)
		reactionRepo.On("Add", ctx, mock.MatchedBy(func(r *domain.Reaction) bool {
			return r.EmojiKey == "\U0001F44D" && r.EmojiRaw == "\U0001F44D\U0001F3FD"
		})).Return(nil)

		actor := domain.AnonymousActor("")
		actor.AnonKey = uuid.NewString()
		err := svc.Add(ctx, 7, "\U0001F44D\U0001F3FD", actor)

		assert.NoError(t, err)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		svc, reactionRepo, commentRepo := newTestService(t)
		commentRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

		actor := domain.AnonymousActor("")
		actor.AnonKey = uuid.NewString()
		err := svc.Add(ctx, 99, "\U0001F44D", actor)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		reactionRepo.AssertNotCalled(t, "Add")
	})

	t.Run("empty emoji rejected", func(t *testing.T) {
		svc, _, commentRepo := newTestService(t)

		err := svc.Add(ctx, 7, "   ", domain.AnonymousActor(""))

		assert.ErrorIs(t, err, domain.ErrValidation)
		commentRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("registered users react under their user key", func(t *testing.T) {
		svc, reactionRepo, commentRepo := newTestService(t)
		user := &domain.User{ID: uuid.New()}
		commentRepo.On("GetByID", ctx, int64(7)).Return(target, nil)
		reactionRepo.On("Add", ctx, mock.MatchedBy(func(r *domain.Reaction) bool {
			return r.ActorKey == "u:"+user.ID.String()
		})).Return(nil)

		err := svc.Add(ctx, 7, "❤️", domain.UserActor(user))

		assert.NoError(t, err)
		reactionRepo.AssertExpectations(t)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	target := &domain.Comment{ID: 7, Path: "/post/1"}

	t.Run("removes by canonical emoji and actor key", func(t *testing.T) {
		svc, reactionRepo, commentRepo := newTestService(t)
		commentRepo.On("GetByID", ctx, int64(7)).Return(target, nil)

		actor := domain.AnonymousActor("")
		actor.AnonKey = "abc"
		reactionRepo.On("Remove", ctx, int64(7), "\U0001F44D", "a:abc").Return(nil)

		err := svc.Remove(ctx, 7, "\U0001F44D\U0001F3FF", actor)

		assert.NoError(t, err)
		reactionRepo.AssertExpectations(t)
	})

	t.Run("missing comment is not found", func(t *testing.T) {
		svc, reactionRepo, commentRepo := newTestService(t)
		commentRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

		actor := domain.AnonymousActor("")
		actor.AnonKey = "abc"
		err := svc.Remove(ctx, 42, "\U0001F44D", actor)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		reactionRepo.AssertNotCalled(t, "Remove")
	})
}
