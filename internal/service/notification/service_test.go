package notification

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"blog-comments/internal/config"
	"blog-comments/internal/domain"
	"blog-comments/internal/mocks"
	"blog-comments/internal/service/notify"
)

type recordingProvider struct {
	mu   sync.Mutex
	sent []notify.Payload
}

func (r *recordingProvider) Name() string { return "recording" }

func (r *recordingProvider) Send(_ context.Context, payload notify.Payload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, payload)
	return nil
}

func (r *recordingProvider) payloads() []notify.Payload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Payload(nil), r.sent...)
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (Service, *recordingProvider, *mocks.CommentRepository, *mocks.SubscriptionService) {
	t.Helper()
	provider := &recordingProvider{}
	commentRepo := new(mocks.CommentRepository)
	subscriptions := new(mocks.SubscriptionService)
	cfg := &config.Config{SiteName: "Example Blog", SiteURL: "https://blog.example.com", AdminEmail: "admin@x.com"}
	svc := NewService(commentRepo, subscriptions, notify.NewDispatcher(provider), cfg)
	return svc, provider, commentRepo, subscriptions
}

func TestCommentCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("root comment notifies the admin only", func(t *testing.T) {
		svc, provider, _, _ := newTestService(t)

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 1, Path: "/post/1", RenderedContent: "<p>hi</p>",
			VisitorName: strPtr("Ana"), VisitorEmail: strPtr("ana@x.com"),
		})

		sent := provider.payloads()
		assert.Len(t, sent, 1)
		admin, ok := sent[0].(notify.AdminNewComment)
		assert.True(t, ok)
		assert.Equal(t, "admin@x.com", admin.ToEmail)
		assert.Equal(t, "Ana", admin.AuthorName)
		assert.Equal(t, "https://blog.example.com/post/1", admin.PageURL)
	})

	t.Run("reply notifies the replied-to author with an unsubscribe link", func(t *testing.T) {
		svc, provider, commentRepo, subscriptions := newTestService(t)
		replyToID := int64(1)
		target := &domain.Comment{
			ID: 1, Path: "/post/1", RenderedContent: "<p>original</p>",
			VisitorName: strPtr("Bea"), VisitorEmail: strPtr("bea@x.com"),
		}
		commentRepo.On("GetByID", ctx, replyToID).Return(target, nil)
		subscriptions.On("IsUnsubscribed", ctx, "bea@x.com").Return(false, nil)
		subscriptions.On("UnsubscribeURL", "bea@x.com").Return("https://blog.example.com/unsubscribe?x=1")

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 2, Path: "/post/1", RenderedContent: "<p>reply</p>",
			ReplyToID: &replyToID, ParentID: &replyToID,
			VisitorName: strPtr("Ana"), VisitorEmail: strPtr("ana@x.com"),
		})

		sent := provider.payloads()
		assert.Len(t, sent, 2)
		var reply *notify.CommentReply
		for _, p := range sent {
			if r, ok := p.(notify.CommentReply); ok {
				reply = &r
			}
		}
		if assert.NotNil(t, reply) {
			assert.Equal(t, "bea@x.com", reply.ToEmail)
			assert.Equal(t, "Bea", reply.ToName)
			assert.Equal(t, "<p>original</p>", reply.ParentContent)
			assert.Equal(t, "https://blog.example.com/unsubscribe?x=1", reply.UnsubscribeURL)
		}
	})

	t.Run("unsubscribed recipients get no reply notice", func(t *testing.T) {
		svc, provider, commentRepo, subscriptions := newTestService(t)
		replyToID := int64(1)
		target := &domain.Comment{
			ID: 1, Path: "/post/1",
			VisitorName: strPtr("Bea"), VisitorEmail: strPtr("bea@x.com"),
		}
		commentRepo.On("GetByID", ctx, replyToID).Return(target, nil)
		subscriptions.On("IsUnsubscribed", ctx, "bea@x.com").Return(true, nil)

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 2, Path: "/post/1", ReplyToID: &replyToID,
			VisitorName: strPtr("Ana"), VisitorEmail: strPtr("ana@x.com"),
		})

		for _, p := range provider.payloads() {
			_, isReply := p.(notify.CommentReply)
			assert.False(t, isReply)
		}
	})

	t.Run("self-replies are skipped", func(t *testing.T) {
		svc, provider, commentRepo, _ := newTestService(t)
		replyToID := int64(1)
		target := &domain.Comment{
			ID: 1, Path: "/post/1",
			VisitorName: strPtr("Ana"), VisitorEmail: strPtr("ana@x.com"),
		}
		commentRepo.On("GetByID", ctx, replyToID).Return(target, nil)

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 2, Path: "/post/1", ReplyToID: &replyToID,
			VisitorName: strPtr("Ana"), VisitorEmail: strPtr("ana@x.com"),
		})

		for _, p := range provider.payloads() {
			_, isReply := p.(notify.CommentReply)
			assert.False(t, isReply)
		}
	})

	t.Run("spam replies notify the admin but not the author", func(t *testing.T) {
		svc, provider, commentRepo, _ := newTestService(t)
		replyToID := int64(1)

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 2, Path: "/post/1", ReplyToID: &replyToID, IsSpam: true,
			VisitorName: strPtr("Spam"), VisitorEmail: strPtr("s@x.com"),
		})

		sent := provider.payloads()
		assert.Len(t, sent, 1)
		admin, ok := sent[0].(notify.AdminNewComment)
		assert.True(t, ok)
		assert.True(t, admin.IsSpam)
		commentRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("admin's own comments skip the admin notice", func(t *testing.T) {
		svc, provider, _, _ := newTestService(t)

		svc.CommentCreated(ctx, &domain.Comment{
			ID: 1, Path: "/post/1",
			VisitorName: strPtr("Admin"), VisitorEmail: strPtr("admin@x.com"),
		})

		assert.Empty(t, provider.payloads())
	})
}
