package comment

import (
	"blog-comments/internal/domain"
	"blog-comments/internal/pkg/avatar"
)

// View projects a single comment for a viewer, without reaction counts.
// Write-path handlers use it to echo the stored comment back.
func View(c *domain.Comment, admin bool) domain.CommentView {
	return buildView(c, admin, nil)
}

// buildView projects a stored comment for a viewer. Non-admin viewers get a
// pre-computed display name and gravatar image and nothing that could
// identify the author; admins additionally get contact fields, client
// metadata and the spam flag.
func buildView(c *domain.Comment, admin bool, reactions map[int64][]domain.ReactionGroup) domain.CommentView {
	view := domain.CommentView{
		ID:          c.ID,
		Path:        c.Path,
		Content:     c.RenderedContent,
		ParentID:    c.ParentID,
		ReplyToID:   c.ReplyToID,
		DisplayName: c.AuthorDisplayName(),
		UserImage:   authorImage(c),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Reactions:   reactions[c.ID],
	}

	if admin {
		view.Email = c.AuthorEmail()
		view.UserIP = c.UserIP
		view.UserAgent = c.UserAgent
		isSpam := c.IsSpam
		view.IsSpam = &isSpam
	}

	return view
}

func authorImage(c *domain.Comment) string {
	switch c.AuthorKind() {
	case domain.ActorUser:
		if c.User != nil && c.User.AvatarURL != nil && *c.User.AvatarURL != "" {
			return *c.User.AvatarURL
		}
		if c.User != nil {
			return avatar.URL(c.User.Email)
		}
		return avatar.URL("")
	case domain.ActorVisitor:
		return avatar.URL(*c.VisitorEmail)
	case domain.ActorAnonymous:
		return avatar.URL("")
	default:
		return avatar.URL("")
	}
}
