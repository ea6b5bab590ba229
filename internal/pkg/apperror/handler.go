package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Handler is the Fiber ErrorHandler. Every error leaves as JSON with at least
// a message field.
func Handler(c *fiber.Ctx, err error) error {
	if appErr, ok := As(err); ok {
		body := fiber.Map{"message": appErr.Message}
		if appErr.Kind == KindValidation {
			log.Debugf("validation failed on %s %s: %v", c.Method(), c.Path(), appErr.FieldNames())
			body["errors"] = appErr.Fields
		}
		return c.Status(appErr.Kind.Status()).JSON(body)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	log.Errorf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server Error"})
}
