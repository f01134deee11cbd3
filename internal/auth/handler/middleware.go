package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// RequireAuth resolves the Bearer access token and stores the authenticated
// user ID in the request locals for downstream handlers.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Missing or malformed Authorization header",
			})
		}

		userID, err := h.tokenService.Verify(strings.TrimPrefix(authHeader, prefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}

		c.Locals(userIDKey, userID)

		return c.Next()
	}
}
