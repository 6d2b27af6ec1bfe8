package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/deepak4044/service_marketplace/services"
)

var validate = validator.New()

// fail renders the uniform error envelope. Domain errors carry their own
// status; anything else is a 500.
func fail(c *fiber.Ctx, err error) error {
	var domainErr *services.Error
	if errors.As(err, &domainErr) {
		return c.Status(domainErr.Status).JSON(fiber.Map{
			"status":  false,
			"message": domainErr.Message,
		})
	}

	log.Printf("🔥 %s %s failed: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  false,
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}
