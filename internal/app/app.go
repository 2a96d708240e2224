package app

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators the HTTP application is built from.
type Deps struct {
	Config    config.Config
	DB        *gorm.DB
	Publisher services.EventPublisher // nil disables contact notifications
	Logger    *zap.Logger
}

// New wires repositories, services and handlers into a Fiber app.
func New(deps Deps) *fiber.App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// --- Repositories ---
	profileRepo := repositories.NewGORMProfileRepository(deps.DB)
	skillRepo := repositories.NewGORMSkillRepository(deps.DB)
	projectRepo := repositories.NewGORMProjectRepository(deps.DB)
	messageRepo := repositories.NewGORMMessageRepository(deps.DB)
	visitorRepo := repositories.NewGORMVisitorRepository(deps.DB)

	// --- Services ---
	profileService := services.NewProfileService(profileRepo)
	skillService := services.NewSkillService(skillRepo)
	projectService := services.NewProjectService(projectRepo)
	messageService := services.NewMessageService(messageRepo, deps.Publisher, logger)
	visitorService := services.NewVisitorService(visitorRepo)

	// --- Handlers ---
	portfolioHandler := handlers.NewPortfolioHandler(profileService, skillService, projectService, logger)
	contactHandler := handlers.NewContactHandler(messageService, logger)
	visitorHandler := handlers.NewVisitorHandler(visitorService, logger)

	app := fiber.New(fiber.Config{
		AppName:               "portfolio",
		ErrorHandler:          errorHandler(logger),
		DisableStartupMessage: true,
	})

	// --- Middleware ---
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.Config.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// --- API Routes ---
	api := app.Group("/api")
	portfolioHandler.RegisterRoutes(api)
	contactHandler.RegisterRoutes(api)
	visitorHandler.RegisterRoutes(api)

	app.Get("/health", healthHandler(deps.DB))

	// --- Static pages ---
	staticDir := deps.Config.StaticDir
	if staticDir == "" {
		staticDir = "."
	}
	app.Get("/admin", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(staticDir, "admin.html"))
	})
	app.Static("/", staticDir, fiber.Static{
		Index: "index.html",
		Next:  isDatabaseFile,
	})

	return app
}

// isDatabaseFile keeps sqlite files (and their -wal/-shm/-journal companions)
// out of the static file server when they share the static directory.
func isDatabaseFile(c *fiber.Ctx) bool {
	name := strings.ToLower(filepath.Base(c.Path()))
	return strings.HasSuffix(name, ".db") || strings.Contains(name, ".db-")
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, database := "healthy", "connected"
		code := fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status, database = "unhealthy", "unreachable"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"database": database,
			"time":     time.Now().Format(time.RFC3339),
		})
	}
}

// errorHandler renders errors that escape the handlers as JSON.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "500 - Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			switch code {
			case fiber.StatusNotFound:
				message = "404 - Not Found"
			case fiber.StatusInternalServerError:
			default:
				message = e.Message
			}
		}
		if code == fiber.StatusInternalServerError {
			logger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}
}
