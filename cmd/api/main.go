package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"blog-comments/internal/config"
	"blog-comments/internal/handler"
	"blog-comments/internal/middleware"
	"blog-comments/internal/repository"
	"blog-comments/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (comment pages will not be cached)", err)
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, cfg)
	handlers := handler.NewHandlers(services)

	if names := services.Dispatcher.Providers(); len(names) == 0 {
		log.Println("Warning: no notification providers configured, emails disabled")
	} else {
		log.Printf("Notification providers enabled: %v", names)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-anonymous-key",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	// Comment reads and writes accept both registered and visitor identities.
	comments := v1.Group("/comments", middleware.AuthOptional(services.Auth))
	comments.Post("/get", h.Comment.List)
	comments.Post("/add", h.Comment.Add)
	comments.Post("/update", h.Comment.Update)
	comments.Post("/delete", h.Comment.Delete)
	comments.Post("/reaction/:commentId/add", h.Reaction.Add)
	comments.Post("/reaction/:commentId/remove", h.Reaction.Remove)

	account := v1.Group("/account")
	account.Post("/notification/unsubscribe", h.Account.Unsubscribe)
	account.Post("/notification/resubscribe", h.Account.Resubscribe)
}
