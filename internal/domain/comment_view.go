package domain

import "time"

// CommentView is the projection returned to clients. Non-admin viewers get
// only DisplayName and UserImage; the contact and moderation fields are
// populated for admins alone.
type CommentView struct {
	ID          int64           `json:"id"`
	Path        string          `json:"path"`
	Content     string          `json:"content"` // sanitized HTML
	ParentID    *int64          `json:"parent_id,omitempty"`
	ReplyToID   *int64          `json:"reply_to_id,omitempty"`
	DisplayName string          `json:"display_name"`
	UserImage   string          `json:"user_image"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Reactions   []ReactionGroup `json:"reactions,omitempty"`

	// Admin-only.
	Email     *string `json:"email,omitempty"`
	UserIP    *string `json:"user_ip,omitempty"`
	UserAgent *string `json:"user_agent,omitempty"`
	IsSpam    *bool   `json:"is_spam,omitempty"`
}

// ReplyPage is one page of direct replies under a top-level comment.
type ReplyPage struct {
	Data    []CommentView `json:"data"`
	Total   int64         `json:"total"`
	Cursor  string        `json:"cursor,omitempty"`
	HasMore bool          `json:"has_more"`
}

// ThreadItem pairs a top-level comment with its first page of replies.
type ThreadItem struct {
	Data     CommentView `json:"data"`
	Children ReplyPage   `json:"children"`
}

// ThreadPage is the full response of a comment list call.
type ThreadPage struct {
	Total    int64        `json:"total"`
	Cursor   string       `json:"cursor,omitempty"`
	HasMore  bool         `json:"has_more"`
	Comments []ThreadItem `json:"comments"`
}
