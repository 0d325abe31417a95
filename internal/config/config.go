package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	CORSOrigins string

	// Site identity, used in notification emails and unsubscribe links.
	SiteName   string
	SiteURL    string
	AdminEmail string

	// Shared secret signing unsubscribe tokens.
	CommentSecret      string
	UnsubscribeTTLDays int

	ResendAPIKey string
	FromEmail    string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	SpamAPIURL string
	SpamAPIKey string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  getDurationEnv("JWT_ACCESS_EXPIRY", 15*time.Minute),
		JWTRefreshExpiry: getDurationEnv("JWT_REFRESH_EXPIRY", 7*24*time.Hour),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:4321"),

		SiteName:   getEnv("SITE_NAME", "Blog"),
		SiteURL:    getEnv("SITE_URL", "http://localhost:4321"),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),

		CommentSecret:      getEnv("COMMENT_SECRET", ""),
		UnsubscribeTTLDays: getIntEnv("UNSUBSCRIBE_TTL_DAYS", 14),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@example.com"),

		SMTPHost: getEnv("SMTP_HOST", ""),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: getEnv("SMTP_USER", ""),
		SMTPPass: getEnv("SMTP_PASS", ""),
		SMTPFrom: getEnv("SMTP_FROM", ""),

		SpamAPIURL: getEnv("SPAM_API_URL", ""),
		SpamAPIKey: getEnv("SPAM_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
