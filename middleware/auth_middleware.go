package middleware

import (
	config "github.com/internbridge/intern_bridge/configs"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
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
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}

// RoleRequired gates a route group to the given user types.
func RoleRequired(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		claims := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)

		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: insufficient role",
		})
	}
}

func AdminRequired() fiber.Handler {
	return RoleRequired("admin")
}

func StudentRequired() fiber.Handler {
	return RoleRequired("student")
}

func CompanyRequired() fiber.Handler {
	return RoleRequired("company")
}

func InstituteRequired() fiber.Handler {
	return RoleRequired("institute")
}
