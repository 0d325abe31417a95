package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"blog-comments/internal/domain"
	"blog-comments/internal/middleware"
	"blog-comments/internal/service/reaction"
)

const anonymousKeyHeader = "x-anonymous-key"

type ReactionHandler struct {
	reactionService reaction.Service
}

func NewReactionHandler(reactionService reaction.Service) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// reactionActor resolves the reaction identity: the session user when
// present, otherwise the client-held anonymous key. A client without a key
// gets one minted and echoed back so its toggles stay idempotent.
func reactionActor(c *fiber.Ctx) domain.Actor {
	if user := middleware.GetCurrentUser(c); user != nil {
		return domain.UserActor(user)
	}

	key := c.Get(anonymousKeyHeader)
	if key == "" {
		key = uuid.NewString()
	}
	c.Set(anonymousKeyHeader, key)

	actor := domain.AnonymousActor("")
	actor.AnonKey = key
	return actor
}

func (h *ReactionHandler) Add(c *fiber.Ctx) error {
	commentID, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.ReactionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.reactionService.Add(c.Context(), commentID, input.Emoji, reactionActor(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func (h *ReactionHandler) Remove(c *fiber.Ctx) error {
	commentID, err := strconv.ParseInt(c.Params("commentId"), 10, 64)
	if err != nil {
		return middleware.BadRequest("Invalid comment ID")
	}

	var input domain.ReactionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.reactionService.Remove(c.Context(), commentID, input.Emoji, reactionActor(c)); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
