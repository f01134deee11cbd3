package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	user := app.Group("/api/v1/user")

	user.Post("/register", h.Register)
	user.Get("/verify/:token", h.Verify)
	user.Post("/reverify", h.Reverify)
	user.Post("/login", h.Login)
	user.Post("/logout", h.RequireAuth(), h.Logout)
}
