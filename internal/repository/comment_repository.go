package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blog-comments/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// GetByID returns (nil, nil) when the comment is absent or soft-deleted.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	// SoftDeleteCascade marks the comment and its direct children deleted in
	// one atomic statement and returns the affected ids.
	SoftDeleteCascade(ctx context.Context, id int64) ([]int64, error)
	ListRoots(ctx context.Context, path string, limit, offset int, sortBy string, includeSpam bool) ([]domain.Comment, int64, error)
	ListReplies(ctx context.Context, parentID int64, limit, offset int, includeSpam bool) ([]domain.Comment, int64, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (path, raw_content, rendered_content, parent_id, reply_to_id,
			user_id, visitor_name, visitor_email, anonymous_name, user_ip, user_agent, is_spam)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		c.Path, c.RawContent, c.RenderedContent, c.ParentID, c.ReplyToID,
		c.UserID, c.VisitorName, c.VisitorEmail, c.AnonymousName, c.UserIP, c.UserAgent, c.IsSpam,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `
		SELECT ` + commentSelectColumns + `
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE c.id = $1 AND c.deleted_at IS NULL`

	comments, err := r.scanComments(ctx, query, id)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, nil
	}
	return &comments[0], nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	query := `
		UPDATE comments
		SET raw_content = $2, rendered_content = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	return r.db.QueryRowxContext(ctx, query,
		c.ID, c.RawContent, c.RenderedContent,
	).Scan(&c.UpdatedAt)
}

func (r *commentRepository) SoftDeleteCascade(ctx context.Context, id int64) ([]int64, error) {
	// Parent and children go in one statement so a partial cascade is never
	// observable.
	query := `
		UPDATE comments SET deleted_at = NOW()
		WHERE (id = $1 OR parent_id = $1) AND deleted_at IS NULL
		RETURNING id`

	rows, err := r.db.QueryxContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var deleted int64
		if err := rows.Scan(&deleted); err != nil {
			return nil, err
		}
		ids = append(ids, deleted)
	}
	return ids, rows.Err()
}

const commentSelectColumns = `
	c.id, c.path, c.raw_content, c.rendered_content, c.parent_id, c.reply_to_id,
	c.user_id, c.visitor_name, c.visitor_email, c.anonymous_name,
	c.user_ip, c.user_agent, c.is_spam, c.created_at, c.updated_at,
	u.display_name, u.email, u.avatar_url`

func (r *commentRepository) ListRoots(ctx context.Context, path string, limit, offset int, sortBy string, includeSpam bool) ([]domain.Comment, int64, error) {
	dir := "DESC"
	if sortBy == domain.SortCreatedAsc {
		dir = "ASC"
	}

	filter := `c.path = $1 AND c.parent_id IS NULL AND c.deleted_at IS NULL`
	if !includeSpam {
		filter += ` AND c.is_spam = false`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments c WHERE ` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, path); err != nil {
		return nil, 0, err
	}

	// id ASC as the secondary key keeps pagination stable across equal
	// timestamps.
	query := `
		SELECT ` + commentSelectColumns + `
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE ` + filter + `
		ORDER BY c.created_at ` + dir + `, c.id ASC
		LIMIT $2 OFFSET $3`

	comments, err := r.scanComments(ctx, query, path, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID int64, limit, offset int, includeSpam bool) ([]domain.Comment, int64, error) {
	filter := `c.parent_id = $1 AND c.deleted_at IS NULL`
	if !includeSpam {
		filter += ` AND c.is_spam = false`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments c WHERE ` + filter
	if err := r.db.GetContext(ctx, &total, countQuery, parentID); err != nil {
		return nil, 0, err
	}

	// Replies read oldest-first regardless of the root sort order.
	query := `
		SELECT ` + commentSelectColumns + `
		FROM comments c
		LEFT JOIN users u ON c.user_id = u.id
		WHERE ` + filter + `
		ORDER BY c.created_at ASC, c.id ASC
		LIMIT $2 OFFSET $3`

	comments, err := r.scanComments(ctx, query, parentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) scanComments(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var userDisplayName, userEmail, userAvatar *string
		err := rows.Scan(
			&c.ID, &c.Path, &c.RawContent, &c.RenderedContent, &c.ParentID, &c.ReplyToID,
			&c.UserID, &c.VisitorName, &c.VisitorEmail, &c.AnonymousName,
			&c.UserIP, &c.UserAgent, &c.IsSpam, &c.CreatedAt, &c.UpdatedAt,
			&userDisplayName, &userEmail, &userAvatar,
		)
		if err != nil {
			return nil, err
		}
		if c.UserID != nil {
			user := domain.CommentUser{ID: *c.UserID, AvatarURL: userAvatar}
			if userDisplayName != nil {
				user.DisplayName = *userDisplayName
			}
			if userEmail != nil {
				user.Email = *userEmail
			}
			c.User = &user
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
