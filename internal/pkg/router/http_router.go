package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/ManuelReschke/InkFox/internal/pkg/cache"
	"github.com/ManuelReschke/InkFox/internal/pkg/database"
	"github.com/ManuelReschke/InkFox/internal/pkg/middleware"
)

const healthTimeout = 2 * time.Second

// HttpRouter installs the cross-cutting middleware and the operational routes.
type HttpRouter struct {
	deps Deps
}

func NewHttpRouter(deps Deps) *HttpRouter {
	return &HttpRouter{deps: deps}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	origins := h.deps.Config.CORSAllowedOrigins
	if allowsAnyOrigin(origins) {
		app.Use(cors.New())
	} else {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowCredentials: true,
		}))
	}

	// Apply UserContext middleware globally
	app.Use(middleware.UserContextMiddleware(h.deps.Sessions))

	app.Get("/health", h.handleHealth)

	// fiber metrics
	if h.deps.Config.MetricsPassword != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				h.deps.Config.MetricsUser: h.deps.Config.MetricsPassword,
			},
		}), monitor.New(monitor.Config{Title: "InkFox Metrics"}))
	}
}

func (h HttpRouter) handleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	body := fiber.Map{"status": "ok", "database": "ok", "cache": "disabled"}
	status := fiber.StatusOK

	if err := database.Ping(ctx, h.deps.DB); err != nil {
		log.Errorf("health: database ping failed: %v", err)
		body["status"] = "unavailable"
		body["database"] = "unavailable"
		status = fiber.StatusServiceUnavailable
	}

	if h.deps.Cache != nil {
		body["cache"] = "ok"
		if err := cache.Ping(ctx, h.deps.Cache); err != nil {
			log.Warnf("health: cache ping failed: %v", err)
			body["cache"] = "unavailable"
		}
	}

	return c.Status(status).JSON(body)
}
