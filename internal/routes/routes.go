package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/aramann/miniapp-backend/internal/auth"
	"github.com/aramann/miniapp-backend/internal/config"
	"github.com/aramann/miniapp-backend/internal/middleware"
	"github.com/aramann/miniapp-backend/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	// The Mini App frontend is served from Telegram's domain.
	app.Use(cors.New())

	// Health
	RegisterHealthRoutes(app, d)

	// Repository: Postgres in regular deployments, in-memory when running
	// dev mode without a database. The Redis cache layer is transparent to
	// everything above it.
	var userRepo user.Repository
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
	} else {
		userRepo = user.NewMemoryRepository()
	}
	if d.Cache != nil {
		userRepo = user.NewCachedRepository(userRepo, d.Cache, d.Cfg.UserCacheTTL, d.Logger)
	}

	authSvc := auth.NewService(d.Cfg, userRepo, d.Logger)
	userHandler := user.NewHandler(userRepo)

	// API routes
	api := app.Group("/api/v1")

	protected := api.Group("", middleware.TelegramAuth(authSvc))
	RegisterUserRoutes(protected, userHandler)

	return nil
}
