package handler

import (
	"github.com/gofiber/fiber/v2"

	"blog-comments/internal/domain"
	"blog-comments/internal/middleware"
	"blog-comments/internal/service/comment"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// actorFromRequest builds the tagged actor union for a comment write: a
// registered user when a session is present, otherwise a named visitor or an
// anonymous display name from the request body.
func actorFromRequest(c *fiber.Ctx, input domain.CreateCommentInput) domain.Actor {
	var actor domain.Actor
	if user := middleware.GetCurrentUser(c); user != nil {
		actor = domain.UserActor(user)
	} else if input.VisitorName != "" || input.VisitorEmail != "" {
		actor = domain.VisitorActor(input.VisitorName, input.VisitorEmail)
	} else {
		actor = domain.AnonymousActor(input.AnonymousName)
	}
	actor.IP = middleware.GetClientIP(c)
	actor.UserAgent = middleware.GetUserAgent(c)
	return actor
}

func viewerActor(c *fiber.Ctx) domain.Actor {
	if user := middleware.GetCurrentUser(c); user != nil {
		return domain.UserActor(user)
	}
	return domain.AnonymousActor("")
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	var input domain.ListCommentsInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	page, err := h.commentService.List(c.Context(), input, viewerActor(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(page)
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actor := actorFromRequest(c, input)
	created, err := h.commentService.Add(c.Context(), input, actor)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    comment.View(created, actor.IsAdmin()),
		"is_spam": created.IsSpam,
	})
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var input domain.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	actor := viewerActor(c)
	updated, err := h.commentService.Update(c.Context(), input, actor)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": comment.View(updated, actor.IsAdmin()),
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	var input domain.DeleteCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	deletedIDs, err := h.commentService.Delete(c.Context(), input.ID, viewerActor(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"deleted_ids": deletedIDs,
	})
}
