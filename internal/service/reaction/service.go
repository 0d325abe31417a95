package reaction

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"

	"blog-comments/internal/domain"
	"blog-comments/internal/pkg/emoji"
	"blog-comments/internal/repository"
	"blog-comments/internal/service/comment"
)

type Service interface {
	// Add stores a reaction keyed by the canonical emoji; re-adding the same
	// (comment, emoji, actor) triple is a no-op, not an error.
	Add(ctx context.Context, commentID int64, emojiRaw string, actor domain.Actor) error
	// Remove deletes the actor's reaction; removing an absent reaction
	// silently succeeds, but a missing comment is NotFound.
	Remove(ctx context.Context, commentID int64, emojiRaw string, actor domain.Actor) error
}

type service struct {
	reactionRepo repository.ReactionRepository
	commentRepo  repository.CommentRepository
	redis        *redis.Client
}

func NewService(reactionRepo repository.ReactionRepository, commentRepo repository.CommentRepository, redisClient *redis.Client) Service {
	return &service{
		reactionRepo: reactionRepo,
		commentRepo:  commentRepo,
		redis:        redisClient,
	}
}

func (s *service) Add(ctx context.Context, commentID int64, emojiRaw string, actor domain.Actor) error {
	emojiRaw = strings.TrimSpace(emojiRaw)
	if emojiRaw == "" {
		return domain.ValidationErrorf("emoji is required")
	}

	target, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.NotFoundErrorf("comment %d", commentID)
	}

	reaction := &domain.Reaction{
		CommentID: commentID,
		EmojiKey:  emoji.Canonicalize(emojiRaw),
		EmojiRaw:  emojiRaw,
		ActorKey:  actor.ReactionKey(),
	}
	if err := s.reactionRepo.Add(ctx, reaction); err != nil {
		return err
	}

	s.invalidateCache(ctx, target.Path)
	return nil
}

func (s *service) Remove(ctx context.Context, commentID int64, emojiRaw string, actor domain.Actor) error {
	emojiRaw = strings.TrimSpace(emojiRaw)
	if emojiRaw == "" {
		return domain.ValidationErrorf("emoji is required")
	}

	target, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.NotFoundErrorf("comment %d", commentID)
	}

	if err := s.reactionRepo.Remove(ctx, commentID, emoji.Canonicalize(emojiRaw), actor.ReactionKey()); err != nil {
		return err
	}

	s.invalidateCache(ctx, target.Path)
	return nil
}

// Reaction counts ride inside the cached comment pages, so a reaction write
// invalidates the page cache the same way comment writes do.
func (s *service) invalidateCache(ctx context.Context, path string) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, comment.CachePattern(path)).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
