package subscription

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blog-comments/internal/config"
	"blog-comments/internal/domain"
	"blog-comments/internal/mocks"
)

func newTestService(repo *mocks.SubscriptionRepository, now time.Time) *service {
	return &service{
		repo:    repo,
		secret:  testSecret,
		ttlDays: 14,
		siteURL: "https://blog.example.com",
		now:     func() time.Time { return now },
	}
}

func TestServiceUnsubscribe(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid token persists opt-out", func(t *testing.T) {
		repo := new(mocks.SubscriptionRepository)
		svc := newTestService(repo, now)
		token := GenerateToken(testSecret, "a@x.com", 14, now)

		repo.On("SetUnsubscribed", ctx, "a@x.com", true).Return(nil).Once()

		status, err := svc.Unsubscribe(ctx, domain.UnsubscribeInput{
			Email: token.Email, Signature: token.Signature, ExpiresAt: token.ExpiresAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenValid, status)
		repo.AssertExpectations(t)
	})

	t.Run("invalid token touches nothing", func(t *testing.T) {
		repo := new(mocks.SubscriptionRepository)
		svc := newTestService(repo, now)
		token := GenerateToken(testSecret, "a@x.com", 14, now)

		status, err := svc.Unsubscribe(ctx, domain.UnsubscribeInput{
			Email: "b@x.com", Signature: token.Signature, ExpiresAt: token.ExpiresAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenInvalid, status)
		repo.AssertNotCalled(t, "SetUnsubscribed")
	})

	t.Run("resubscribe clears opt-out", func(t *testing.T) {
		repo := new(mocks.SubscriptionRepository)
		svc := newTestService(repo, now)
		token := GenerateToken(testSecret, "a@x.com", 14, now)

		repo.On("SetUnsubscribed", ctx, "a@x.com", false).Return(nil).Once()

		status, err := svc.Resubscribe(ctx, domain.UnsubscribeInput{
			Email: token.Email, Signature: token.Signature, ExpiresAt: token.ExpiresAt,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.TokenValid, status)
		repo.AssertExpectations(t)
	})
}

func TestUnsubscribeURLVerifies(t *testing.T) {
	// A link minted by the service must verify against the same secret.
	repo := new(mocks.SubscriptionRepository)
	cfg := &config.Config{CommentSecret: testSecret, UnsubscribeTTLDays: 14, SiteURL: "https://blog.example.com"}
	svc := NewService(repo, cfg)

	url := svc.UnsubscribeURL("a@x.com")
	assert.Contains(t, url, "email=a%40x.com")
}
