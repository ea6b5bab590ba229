package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/InkFox/app/controllers"
	"github.com/ManuelReschke/InkFox/internal/pkg/authoring"
	"github.com/ManuelReschke/InkFox/internal/pkg/categories"
	"github.com/ManuelReschke/InkFox/internal/pkg/credentials"
	"github.com/ManuelReschke/InkFox/internal/pkg/middleware"
)

// ApiRouter installs the JSON API routes.
type ApiRouter struct {
	deps Deps
}

func NewApiRouter(deps Deps) *ApiRouter {
	return &ApiRouter{deps: deps}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	repos := h.deps.Repos
	authController := controllers.NewAuthController(credentials.NewStore(repos.User), h.deps.Sessions)
	articleController := controllers.NewArticleController(authoring.NewWorkflow(repos.Article))
	categoryController := controllers.NewCategoryController(categories.NewRegistry(repos.Category, repos.Article))

	auth := app.Group("/auth")
	auth.Post("/register", authController.HandleRegister)
	auth.Post("/login", h.loginLimiter(), authController.HandleLogin)
	auth.Post("/logout", middleware.RequireAPISessionAuth, authController.HandleLogout)
	auth.Get("/me", middleware.RequireAPISessionAuth, authController.HandleMe)

	articles := app.Group("/articles")
	articles.Get("/", articleController.HandleIndex)
	articles.Get("/:slug", articleController.HandleShow)
	articles.Post("/", middleware.RequireAPISessionAuth, articleController.HandleStore)
	articles.Put("/:id", middleware.RequireAPISessionAuth, articleController.HandleUpdate)
	articles.Delete("/:id", middleware.RequireAPISessionAuth, articleController.HandleDestroy)

	cats := app.Group("/categories")
	cats.Get("/", categoryController.HandleIndex)
	cats.Get("/:slug", categoryController.HandleShow)
}

// loginLimiter throttles login attempts per client IP. A non-positive limit
// disables it.
func (h ApiRouter) loginLimiter() fiber.Handler {
	limit := h.deps.Config.LoginRateLimit
	if limit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		Storage:    h.deps.LimiterStorage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too Many Attempts.",
			})
		},
	})
}
