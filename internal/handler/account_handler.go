package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"blog-comments/internal/domain"
	"blog-comments/internal/middleware"
	"blog-comments/internal/service/subscription"
)

type AccountHandler struct {
	subscriptionService subscription.Service
}

func NewAccountHandler(subscriptionService subscription.Service) *AccountHandler {
	return &AccountHandler{subscriptionService: subscriptionService}
}

func (h *AccountHandler) Unsubscribe(c *fiber.Ctx) error {
	return h.setOptOut(c, h.subscriptionService.Unsubscribe)
}

func (h *AccountHandler) Resubscribe(c *fiber.Ctx) error {
	return h.setOptOut(c, h.subscriptionService.Resubscribe)
}

type optOutFunc func(ctx context.Context, input domain.UnsubscribeInput) (domain.TokenStatus, error)

func (h *AccountHandler) setOptOut(c *fiber.Ctx, op optOutFunc) error {
	var input domain.UnsubscribeInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.Email == "" || input.Signature == "" || input.ExpiresAt == 0 {
		return middleware.BadRequest("email, signature and expires_at are required")
	}

	status, err := op(c.Context(), input)
	if err != nil {
		return err
	}
	if status != domain.TokenValid {
		// A rejected token is a normal outcome for the caller, not an HTTP
		// error: the page shows the cause and offers a fresh link.
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"cause":   string(status),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}
