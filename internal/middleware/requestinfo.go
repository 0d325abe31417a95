package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	ClientIPContextKey  = "client_ip"
	UserAgentContextKey = "user_agent"
)

// RequestInfo captures the real client IP (honoring reverse-proxy headers)
// and User-Agent so the comment write path can persist them for admin
// visibility.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("CF-Connecting-IP")
		if ip == "" {
			if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
				ip = strings.TrimSpace(strings.Split(forwarded, ",")[0])
			}
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(ClientIPContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))
		return c.Next()
	}
}

func GetClientIP(c *fiber.Ctx) string {
	ip, _ := c.Locals(ClientIPContextKey).(string)
	return ip
}

func GetUserAgent(c *fiber.Ctx) string {
	ua, _ := c.Locals(UserAgentContextKey).(string)
	return ua
}
