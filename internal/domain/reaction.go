package domain

import "time"

// Reaction rows are unique per (comment_id, emoji_key, actor_key). EmojiKey
// is the canonical form (skin-tone modifiers stripped); EmojiRaw is what the
// client sent. ActorKey is the tagged actor key from Actor.ReactionKey.
type Reaction struct {
	ID        int64     `json:"id" db:"id"`
	CommentID int64     `json:"comment_id" db:"comment_id"`
	EmojiKey  string    `json:"emoji_key" db:"emoji_key"`
	EmojiRaw  string    `json:"emoji_raw" db:"emoji_raw"`
	ActorKey  string    `json:"-" db:"actor_key"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReactionGroup is the aggregated per-emoji view on a comment.
type ReactionGroup struct {
	CommentID int64  `json:"-" db:"comment_id"`
	Emoji     string `json:"emoji" db:"emoji_key"`
	Count     int64  `json:"count" db:"count"`
}

type ReactionInput struct {
	Emoji string `json:"emoji" validate:"required"`
}
