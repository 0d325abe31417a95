package service

import (
	"github.com/redis/go-redis/v9"

	"blog-comments/internal/config"
	"blog-comments/internal/pkg/markdown"
	"blog-comments/internal/repository"
	"blog-comments/internal/service/auth"
	"blog-comments/internal/service/comment"
	"blog-comments/internal/service/notification"
	"blog-comments/internal/service/notify"
	"blog-comments/internal/service/reaction"
	"blog-comments/internal/service/spam"
	"blog-comments/internal/service/subscription"
)

type Services struct {
	Auth         auth.Service
	Comment      comment.Service
	Reaction     reaction.Service
	Subscription subscription.Service
	Notification notification.Service
	Dispatcher   *notify.Dispatcher
}

// NewServices is the composition root: every service is constructed here and
// passed by reference, so there is no package-level mutable state anywhere.
func NewServices(repos *repository.Repositories, redisClient *redis.Client, cfg *config.Config) *Services {
	renderer := markdown.NewRenderer()
	emailRenderer := notify.NewEmailRenderer()

	var providers []notify.Provider
	if cfg.ResendAPIKey != "" {
		providers = append(providers, notify.NewResendProvider(cfg.ResendAPIKey, cfg.FromEmail, cfg.SiteName, emailRenderer))
	}
	if cfg.SMTPHost != "" && cfg.SMTPFrom != "" {
		providers = append(providers, notify.NewSMTPProvider(
			cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SiteName, emailRenderer))
	}
	dispatcher := notify.NewDispatcher(providers...)

	subscriptionService := subscription.NewService(repos.Subscription, cfg)
	notificationService := notification.NewService(repos.Comment, subscriptionService, dispatcher, cfg)
	spamChecker := spam.NewChecker(cfg)

	commentService := comment.NewService(repos.Comment, repos.Reaction, renderer, spamChecker, notificationService, redisClient)
	reactionService := reaction.NewService(repos.Reaction, repos.Comment, redisClient)
	authService := auth.NewService(repos.User, repos.Session, cfg)

	return &Services{
		Auth:         authService,
		Comment:      commentService,
		Reaction:     reactionService,
		Subscription: subscriptionService,
		Notification: notificationService,
		Dispatcher:   dispatcher,
	}
}
