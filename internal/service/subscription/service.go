package subscription

import (
	"context"
	"time"

	"blog-comments/internal/config"
	"blog-comments/internal/domain"
	"blog-comments/internal/repository"
)

type Service interface {
	// Unsubscribe and Resubscribe verify the token and, when valid, persist
	// the opt-out state. The returned status tells the caller why a request
	// was rejected.
	Unsubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error)
	Resubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error)
	IsUnsubscribed(ctx context.Context, email string) (bool, error)
	// UnsubscribeURL mints a fresh token link for an email, for embedding in
	// notification emails.
	UnsubscribeURL(email string) string
}

type service struct {
	repo    repository.SubscriptionRepository
	secret  string
	ttlDays int
	siteURL string
	now     func() time.Time
}

func NewService(repo repository.SubscriptionRepository, cfg *config.Config) Service {
	return &service{
		repo:    repo,
		secret:  cfg.CommentSecret,
		ttlDays: cfg.UnsubscribeTTLDays,
		siteURL: cfg.SiteURL,
		now:     time.Now,
	}
}

func (s *service) Unsubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error) {
	return s.setOptOut(ctx, input, true)
}

func (s *service) Resubscribe(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error) {
	return s.setOptOut(ctx, input, false)
}

func (s *service) setOptOut(ctx context.Context, input domain.UnsubscribeInput, unsubscribed bool) (domain.TokenStatus, error) {
	status := VerifyToken(s.secret, input.Email, input.Signature, input.ExpiresAt, s.now())
	if status != domain.TokenValid {
		return status, nil
	}
	if err := s.repo.SetUnsubscribed(ctx, input.Email, unsubscribed); err != nil {
		return status, err
	}
	return domain.TokenValid, nil
}

func (s *service) IsUnsubscribed(ctx context.Context, email string) (bool, error) {
	return s.repo.IsUnsubscribed(ctx, email)
}

func (s *service) UnsubscribeURL(email string) string {
	return GenerateToken(s.secret, email, s.ttlDays, s.now()).URL(s.siteURL)
}
