package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/deepak4044/service_marketplace/configs"
	"github.com/deepak4044/service_marketplace/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": false, "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": false, "message": "Invalid or expired JWT", "data": nil})
}

// RequireRole replaces per-handler role checks with a route-level guard.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		claimRole, _ := claims["role"].(string)

		if claimRole != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "Forbidden: " + role + " access required",
			})
		}
		return c.Next()
	}
}

func ProviderRequired() fiber.Handler {
	return RequireRole(models.RoleProvider)
}

func AdminRequired() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

// UserID extracts the authenticated user id from the JWT claims.
func UserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	raw, _ := claims["user_id"].(string)
	id, _ := uuid.Parse(raw)
	return id
}
