// Package notification composes notification payloads for comment events and
// hands them to the dispatcher. Everything here is best-effort: failures are
// logged, never surfaced to the write path that triggered them.
package notification

import (
	"context"
	"log"

	"blog-comments/internal/config"
	"blog-comments/internal/domain"
	"blog-comments/internal/repository"
	"blog-comments/internal/service/notify"
	"blog-comments/internal/service/subscription"
)

type Service interface {
	// CommentCreated notifies the admin of the new comment and, when the
	// comment is a reply, the author of the comment it replies to.
	CommentCreated(ctx context.Context, comment *domain.Comment)
}

type service struct {
	commentRepo   repository.CommentRepository
	subscriptions subscription.Service
	dispatcher    *notify.Dispatcher

	siteName   string
	siteURL    string
	adminEmail string
}

func NewService(
	commentRepo repository.CommentRepository,
	subscriptions subscription.Service,
	dispatcher *notify.Dispatcher,
	cfg *config.Config,
) Service {
	return &service{
		commentRepo:   commentRepo,
		subscriptions: subscriptions,
		dispatcher:    dispatcher,
		siteName:      cfg.SiteName,
		siteURL:       cfg.SiteURL,
		adminEmail:    cfg.AdminEmail,
	}
}

func (s *service) CommentCreated(ctx context.Context, comment *domain.Comment) {
	pageURL := s.siteURL + comment.Path
	authorName := comment.AuthorDisplayName()
	authorEmail := comment.AuthorEmail()

	if s.adminEmail != "" && (authorEmail == nil || *authorEmail != s.adminEmail) {
		s.dispatcher.Send(ctx, notify.AdminNewComment{
			ToEmail:    s.adminEmail,
			AuthorName: authorName,
			PagePath:   comment.Path,
			PageURL:    pageURL,
			Content:    comment.RenderedContent,
			IsSpam:     comment.IsSpam,
			SiteName:   s.siteName,
		})
	}

	// Spam never triggers reply notifications; the admin notice above is
	// enough.
	if comment.IsSpam {
		return
	}

	targetID := comment.ReplyToID
	if targetID == nil {
		targetID = comment.ParentID
	}
	if targetID == nil {
		return
	}

	target, err := s.commentRepo.GetByID(ctx, *targetID)
	if err != nil {
		log.Printf("notification: failed to load comment %d for reply notice: %v", *targetID, err)
		return
	}
	if target == nil {
		return
	}

	recipient := target.AuthorEmail()
	if recipient == nil {
		return
	}
	if authorEmail != nil && *authorEmail == *recipient {
		// Self-reply.
		return
	}

	unsubscribed, err := s.subscriptions.IsUnsubscribed(ctx, *recipient)
	if err != nil {
		log.Printf("notification: failed to check subscription for %s: %v", *recipient, err)
		return
	}
	if unsubscribed {
		return
	}

	s.dispatcher.Send(ctx, notify.CommentReply{
		ToEmail:        *recipient,
		ToName:         target.AuthorDisplayName(),
		AuthorName:     authorName,
		PagePath:       comment.Path,
		PageURL:        pageURL,
		Content:        comment.RenderedContent,
		ParentContent:  target.RenderedContent,
		UnsubscribeURL: s.subscriptions.UnsubscribeURL(*recipient),
		SiteName:       s.siteName,
	})
}
