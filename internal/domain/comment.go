package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a stored comment row. The author is exactly one of: a registered
// user (UserID), a named visitor (VisitorName + VisitorEmail), or an
// anonymous display name. A non-nil ParentID always references a top-level
// comment, so threads are at most two levels deep; ReplyToID may point at any
// comment on the same path and only drives @-mention display.
type Comment struct {
	ID              int64      `json:"id" db:"id"`
	Path            string     `json:"path" db:"path"`
	RawContent      string     `json:"raw_content" db:"raw_content"`
	RenderedContent string     `json:"rendered_content" db:"rendered_content"`
	ParentID        *int64     `json:"parent_id" db:"parent_id"`
	ReplyToID       *int64     `json:"reply_to_id" db:"reply_to_id"`
	UserID          *uuid.UUID `json:"user_id" db:"user_id"`
	VisitorName     *string    `json:"visitor_name" db:"visitor_name"`
	VisitorEmail    *string    `json:"visitor_email" db:"visitor_email"`
	AnonymousName   *string    `json:"anonymous_name" db:"anonymous_name"`
	UserIP          *string    `json:"user_ip" db:"user_ip"`
	UserAgent       *string    `json:"user_agent" db:"user_agent"`
	IsSpam          bool       `json:"is_spam" db:"is_spam"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time `json:"-" db:"deleted_at"`

	// Joined registered-author fields, populated by list queries.
	User *CommentUser `json:"user,omitempty" db:"-"`
}

type CommentUser struct {
	ID          uuid.UUID `json:"id" db:"user_id"`
	DisplayName string    `json:"display_name" db:"user_display_name"`
	Email       string    `json:"email" db:"user_email"`
	AvatarURL   *string   `json:"avatar_url" db:"user_avatar_url"`
}

// AuthorKind derives the author variant from the stored columns.
func (c *Comment) AuthorKind() ActorKind {
	switch {
	case c.UserID != nil:
		return ActorUser
	case c.VisitorName != nil:
		return ActorVisitor
	default:
		return ActorAnonymous
	}
}

// AuthorEmail returns the address notifications for replies should go to,
// or nil when the author is anonymous.
func (c *Comment) AuthorEmail() *string {
	switch c.AuthorKind() {
	case ActorUser:
		if c.User != nil && c.User.Email != "" {
			email := c.User.Email
			return &email
		}
		return nil
	case ActorVisitor:
		return c.VisitorEmail
	case ActorAnonymous:
		return nil
	default:
		return nil
	}
}

func (c *Comment) AuthorDisplayName() string {
	switch c.AuthorKind() {
	case ActorUser:
		if c.User != nil {
			return c.User.DisplayName
		}
		return ""
	case ActorVisitor:
		return *c.VisitorName
	case ActorAnonymous:
		if c.AnonymousName != nil {
			return *c.AnonymousName
		}
		return "Anonymous"
	default:
		return ""
	}
}

// OwnedBy reports whether the actor is the registered author of the comment.
// Visitor and anonymous comments have no owner.
func (c *Comment) OwnedBy(actor Actor) bool {
	return actor.Kind == ActorUser && c.UserID != nil && *c.UserID == actor.User.ID
}

type CreateCommentInput struct {
	Path          string `json:"path" validate:"required"`
	Content       string `json:"content" validate:"required,min=1,max=10000"`
	ParentID      *int64 `json:"parent_id"`
	ReplyToID     *int64 `json:"reply_to_id"`
	VisitorName   string `json:"visitor_name"`
	VisitorEmail  string `json:"visitor_email"`
	AnonymousName string `json:"anonymous_name"`
}

type UpdateCommentInput struct {
	ID         int64  `json:"id" validate:"required"`
	RawContent string `json:"raw_content" validate:"required,min=1,max=10000"`
}

type DeleteCommentInput struct {
	ID int64 `json:"id" validate:"required"`
}
