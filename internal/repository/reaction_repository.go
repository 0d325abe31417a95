package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blog-comments/internal/domain"
)

type ReactionRepository interface {
	// Add is idempotent: re-adding an existing (comment, emoji, actor)
	// triple is a no-op.
	Add(ctx context.Context, reaction *domain.Reaction) error
	// Remove is a no-op when the row does not exist.
	Remove(ctx context.Context, commentID int64, emojiKey, actorKey string) error
	// GroupByComments aggregates reaction counts per (comment, emoji).
	GroupByComments(ctx context.Context, commentIDs []int64) (map[int64][]domain.ReactionGroup, error)
}

type reactionRepository struct {
	db *sqlx.DB
}

func NewReactionRepository(db *sqlx.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Add(ctx context.Context, reaction *domain.Reaction) error {
	query := `
		INSERT INTO reactions (comment_id, emoji_key, emoji_raw, actor_key)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (comment_id, emoji_key, actor_key) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		reaction.CommentID, reaction.EmojiKey, reaction.EmojiRaw, reaction.ActorKey,
	)
	return err
}

func (r *reactionRepository) Remove(ctx context.Context, commentID int64, emojiKey, actorKey string) error {
	query := `DELETE FROM reactions WHERE comment_id = $1 AND emoji_key = $2 AND actor_key = $3`
	_, err := r.db.ExecContext(ctx, query, commentID, emojiKey, actorKey)
	return err
}

func (r *reactionRepository) GroupByComments(ctx context.Context, commentIDs []int64) (map[int64][]domain.ReactionGroup, error) {
	result := make(map[int64][]domain.ReactionGroup)
	if len(commentIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT comment_id, emoji_key, COUNT(*) AS count
		FROM reactions
		WHERE comment_id IN (?)
		GROUP BY comment_id, emoji_key
		ORDER BY comment_id, count DESC, emoji_key`, commentIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var groups []domain.ReactionGroup
	if err := r.db.SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, err
	}

	for _, g := range groups {
		result[g.CommentID] = append(result[g.CommentID], g)
	}
	return result, nil
}
