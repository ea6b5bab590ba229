package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	appsession "github.com/ManuelReschke/InkFox/internal/pkg/session"
	"github.com/ManuelReschke/InkFox/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session user for every request and
// stores it in Locals. Requests without a session are anonymous.
func UserContextMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := appsession.UserID(c, store)
		usercontext.Set(c, usercontext.UserContext{
			UserID:     userID,
			IsLoggedIn: ok,
		})
		return c.Next()
	}
}
