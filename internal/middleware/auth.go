package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blog-comments/internal/domain"
	"blog-comments/internal/service/auth"
)

const UserContextKey = "user"

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolveUser(c, authService)
		if err != nil {
			return err
		}
		if user == nil {
			return Unauthorized("Missing or invalid authorization")
		}
		c.Locals(UserContextKey, user)
		return c.Next()
	}
}

// AuthOptional resolves the identity when a bearer token is present and lets
// the request continue anonymously otherwise. Comment reads and visitor
// writes go through here.
func AuthOptional(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := resolveUser(c, authService)
		if err == nil && user != nil {
			c.Locals(UserContextKey, user)
		}
		return c.Next()
	}
}

func resolveUser(c *fiber.Ctx, authService auth.Service) (*domain.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, Unauthorized("Invalid authorization header format")
	}

	claims, err := authService.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, Unauthorized("Invalid or expired token")
	}

	user, err := authService.GetUserByID(c.Context(), claims.UserID)
	if err != nil || user == nil {
		return nil, Unauthorized("User not found")
	}
	return user, nil
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
