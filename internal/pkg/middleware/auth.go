package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/InkFox/internal/pkg/usercontext"
)

// RequireAPISessionAuth ensures a logged-in session and answers with a JSON 401 otherwise.
func RequireAPISessionAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthenticated.",
		})
	}
	return c.Next()
}
