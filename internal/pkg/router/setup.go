package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ManuelReschke/InkFox/app/repository"
	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
	"github.com/ManuelReschke/InkFox/internal/pkg/env"
)

// Router installs a group of routes on the app.
type Router interface {
	InstallRouter(app *fiber.App)
}

// Config holds the HTTP settings read from the environment.
type Config struct {
	CORSAllowedOrigins string
	LoginRateLimit     int
	MetricsUser        string
	MetricsPassword    string
	AccessLog          bool
}

func ConfigFromEnv() Config {
	return Config{
		CORSAllowedOrigins: env.GetEnv("CORS_ALLOWED_ORIGINS", "*"),
		LoginRateLimit:     env.GetEnvInt("LOGIN_RATE_LIMIT", 10),
		MetricsUser:        env.GetEnv("METRICS_USER", "admin"),
		MetricsPassword:    env.GetEnv("METRICS_PASSWORD", ""),
		AccessLog:          true,
	}
}

// Deps are the collaborators shared by all routes.
type Deps struct {
	DB       *gorm.DB
	Cache    redis.UniversalClient
	Sessions *session.Store
	Repos    *repository.Repositories
	// LimiterStorage shares login rate limit counters between instances.
	// Nil keeps them in memory.
	LimiterStorage fiber.Storage
	Config         Config
}

// NewApp creates the Fiber app with the error handler, the global middleware
// chain and all routes.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "InkFox",
		ErrorHandler: apperror.Handler,
		BodyLimit:    1 << 20,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if deps.Config.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	InstallRouter(app, deps)
	return app
}

func InstallRouter(app *fiber.App, deps Deps) {
	// The HTTP router installs the session user context the API routes rely on.
	setup(app, NewHttpRouter(deps), NewApiRouter(deps))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}

func allowsAnyOrigin(origins string) bool {
	return strings.TrimSpace(origins) == "*" || strings.TrimSpace(origins) == ""
}
