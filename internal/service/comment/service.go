package comment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"blog-comments/internal/domain"
	"blog-comments/internal/pkg/markdown"
	"blog-comments/internal/repository"
	"blog-comments/internal/service/notification"
	"blog-comments/internal/service/spam"
)

type Service interface {
	// List assembles the threaded, paginated, role-masked view of a page's
	// comments. Read-only; an unknown path yields an empty page.
	List(ctx context.Context, input domain.ListCommentsInput, viewer domain.Actor) (*domain.ThreadPage, error)
	Add(ctx context.Context, input domain.CreateCommentInput, actor domain.Actor) (*domain.Comment, error)
	Update(ctx context.Context, input domain.UpdateCommentInput, actor domain.Actor) (*domain.Comment, error)
	// Delete soft-deletes the comment and cascades to its direct children,
	// returning every id it deleted.
	Delete(ctx context.Context, id int64, actor domain.Actor) ([]int64, error)
}

type service struct {
	commentRepo  repository.CommentRepository
	reactionRepo repository.ReactionRepository
	renderer     *markdown.Renderer
	spamChecker  spam.Checker
	notifier     notification.Service
	redis        *redis.Client
}

func NewService(
	commentRepo repository.CommentRepository,
	reactionRepo repository.ReactionRepository,
	renderer *markdown.Renderer,
	spamChecker spam.Checker,
	notifier notification.Service,
	redisClient *redis.Client,
) Service {
	return &service{
		commentRepo:  commentRepo,
		reactionRepo: reactionRepo,
		renderer:     renderer,
		spamChecker:  spamChecker,
		notifier:     notifier,
		redis:        redisClient,
	}
}

const cacheTTL = 5 * time.Minute

// CachePattern matches every cached list page for a path; writes to the path
// invalidate with it.
func CachePattern(path string) string {
	return fmt.Sprintf("comments:%s:*", path)
}

func cacheKey(input domain.ListCommentsInput, offset int) string {
	return fmt.Sprintf("comments:%s:%s:%d:%d", input.Path, input.SortBy, input.Limit, offset)
}

func (s *service) List(ctx context.Context, input domain.ListCommentsInput, viewer domain.Actor) (*domain.ThreadPage, error) {
	if strings.TrimSpace(input.Path) == "" {
		return nil, domain.ValidationErrorf("path is required")
	}
	if err := input.Normalize(); err != nil {
		return nil, err
	}
	offset, err := domain.DecodeCursor(input.Cursor)
	if err != nil {
		return nil, err
	}

	admin := viewer.IsAdmin()

	// Only the public projection is cached; the admin view carries contact
	// fields and must never be served from it.
	if !admin && s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey(input, offset)).Result(); err == nil {
			var page domain.ThreadPage
			if json.Unmarshal([]byte(cached), &page) == nil {
				return &page, nil
			}
		}
	}

	roots, total, err := s.commentRepo.ListRoots(ctx, input.Path, input.Limit, offset, input.SortBy, admin)
	if err != nil {
		return nil, err
	}

	type thread struct {
		root    domain.Comment
		replies []domain.Comment
		rTotal  int64
	}
	threads := make([]thread, 0, len(roots))
	ids := make([]int64, 0, len(roots)*(domain.RepliesPerRoot+1))
	for _, root := range roots {
		replies, rTotal, err := s.commentRepo.ListReplies(ctx, root.ID, domain.RepliesPerRoot, 0, admin)
		if err != nil {
			return nil, err
		}
		threads = append(threads, thread{root: root, replies: replies, rTotal: rTotal})
		ids = append(ids, root.ID)
		for _, reply := range replies {
			ids = append(ids, reply.ID)
		}
	}

	reactions, err := s.reactionRepo.GroupByComments(ctx, ids)
	if err != nil {
		return nil, err
	}

	page := &domain.ThreadPage{
		Total:    total,
		HasMore:  int64(offset+len(roots)) < total,
		Comments: make([]domain.ThreadItem, 0, len(threads)),
	}
	if page.HasMore {
		page.Cursor = domain.EncodeCursor(offset + len(roots))
	}

	for _, t := range threads {
		item := domain.ThreadItem{
			Data: buildView(&t.root, admin, reactions),
			Children: domain.ReplyPage{
				Data:    make([]domain.CommentView, 0, len(t.replies)),
				Total:   t.rTotal,
				HasMore: int64(len(t.replies)) < t.rTotal,
			},
		}
		if item.Children.HasMore {
			item.Children.Cursor = domain.EncodeCursor(len(t.replies))
		}
		for i := range t.replies {
			item.Children.Data = append(item.Children.Data, buildView(&t.replies[i], admin, reactions))
		}
		page.Comments = append(page.Comments, item)
	}

	if !admin && s.redis != nil {
		if encoded, err := json.Marshal(page); err == nil {
			_ = s.redis.Set(ctx, cacheKey(input, offset), encoded, cacheTTL).Err()
		}
	}

	return page, nil
}

func (s *service) Add(ctx context.Context, input domain.CreateCommentInput, actor domain.Actor) (*domain.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ValidationErrorf("content is required")
	}
	if strings.TrimSpace(input.Path) == "" {
		return nil, domain.ValidationErrorf("path is required")
	}

	comment := &domain.Comment{
		Path:       input.Path,
		RawContent: content,
	}

	switch actor.Kind {
	case domain.ActorUser:
		id := actor.User.ID
		comment.UserID = &id
		comment.User = &domain.CommentUser{
			ID:          actor.User.ID,
			DisplayName: actor.User.DisplayName,
			Email:       actor.User.Email,
			AvatarURL:   actor.User.AvatarURL,
		}
	case domain.ActorVisitor:
		if actor.VisitorName == "" || actor.VisitorEmail == "" {
			return nil, domain.ValidationErrorf("visitor comments require both name and email")
		}
		name, email := actor.VisitorName, actor.VisitorEmail
		comment.VisitorName = &name
		comment.VisitorEmail = &email
	case domain.ActorAnonymous:
		if actor.AnonymousName == "" {
			return nil, domain.ValidationErrorf("visitor comments require both name and email")
		}
		name := actor.AnonymousName
		comment.AnonymousName = &name
	}

	if actor.IP != "" {
		ip := actor.IP
		comment.UserIP = &ip
	}
	if actor.UserAgent != "" {
		ua := actor.UserAgent
		comment.UserAgent = &ua
	}

	if err := s.resolveThread(ctx, input, comment); err != nil {
		return nil, err
	}

	comment.RenderedContent = s.renderer.Render(content)

	isSpam, err := s.spamChecker.Check(ctx, spam.Candidate{
		Author:    actor.DisplayName(),
		Email:     derefOr(comment.AuthorEmail(), ""),
		IP:        actor.IP,
		UserAgent: actor.UserAgent,
		Content:   content,
		Path:      input.Path,
	})
	if err != nil {
		// The classifier is best-effort; an outage never blocks commenting.
		log.Printf("comment: spam check failed: %v", err)
		isSpam = false
	}
	comment.IsSpam = isSpam

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.Path)

	// Fire-and-forget: notification failures are logged inside, never
	// surfaced to the caller of the write.
	created := *comment
	go s.notifier.CommentCreated(context.Background(), &created)

	return comment, nil
}

// resolveThread validates parent/reply_to linkage and keeps threads at most
// two levels deep: the parent of any reply is always a top-level comment.
func (s *service) resolveThread(ctx context.Context, input domain.CreateCommentInput, comment *domain.Comment) error {
	if input.ReplyToID != nil {
		replyTo, err := s.commentRepo.GetByID(ctx, *input.ReplyToID)
		if err != nil {
			return err
		}
		if replyTo == nil {
			return domain.NotFoundErrorf("comment %d", *input.ReplyToID)
		}
		if replyTo.Path != input.Path {
			return domain.ValidationErrorf("reply_to comment belongs to a different path")
		}
		comment.ReplyToID = input.ReplyToID

		// Derive the thread root from the target when the client did not
		// send one.
		if input.ParentID == nil {
			rootID := replyTo.ID
			if replyTo.ParentID != nil {
				rootID = *replyTo.ParentID
			}
			comment.ParentID = &rootID
			return nil
		}
	}

	if input.ParentID == nil {
		return nil
	}

	parent, err := s.commentRepo.GetByID(ctx, *input.ParentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return domain.NotFoundErrorf("comment %d", *input.ParentID)
	}
	if parent.Path != input.Path {
		return domain.ValidationErrorf("parent comment belongs to a different path")
	}
	if parent.ParentID != nil {
		return domain.ValidationErrorf("replies cannot nest below a reply")
	}
	comment.ParentID = input.ParentID
	return nil
}

func (s *service) Update(ctx context.Context, input domain.UpdateCommentInput, actor domain.Actor) (*domain.Comment, error) {
	content := strings.TrimSpace(input.RawContent)
	if content == "" {
		return nil, domain.ValidationErrorf("content is required")
	}

	comment, err := s.commentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NotFoundErrorf("comment %d", input.ID)
	}
	if !comment.OwnedBy(actor) && !actor.IsAdmin() {
		return nil, domain.ForbiddenErrorf("not the author of comment %d", input.ID)
	}

	comment.RawContent = content
	comment.RenderedContent = s.renderer.Render(content)

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.Path)
	return comment, nil
}

func (s *service) Delete(ctx context.Context, id int64, actor domain.Actor) ([]int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, domain.NotFoundErrorf("comment %d", id)
	}
	if !comment.OwnedBy(actor) && !actor.IsAdmin() {
		return nil, domain.ForbiddenErrorf("not the author of comment %d", id)
	}

	deletedIDs, err := s.commentRepo.SoftDeleteCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, comment.Path)
	return deletedIDs, nil
}

func (s *service) invalidateCache(ctx context.Context, path string) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, CachePattern(path)).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
