package controllers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/InkFox/internal/pkg/apperror"
)

const malformedJSONMessage = "Malformed JSON body."

// parseJSON decodes the request body into out. An empty body decodes as {}.
func parseJSON(c *fiber.Ctx, out any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return apperror.BadRequest(malformedJSONMessage)
	}
	return nil
}

// paramID reads a positive numeric route parameter. Anything else cannot
// name an existing row and is reported as notFound.
func paramID(c *fiber.Ctx, name, notFound string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, apperror.NotFound(notFound)
	}
	return uint(id), nil
}
