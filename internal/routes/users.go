package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aramann/miniapp-backend/internal/user"
)

// RegisterUserRoutes adds the authenticated user endpoints.
func RegisterUserRoutes(router fiber.Router, h *user.Handler) {
	router.Get("/users/me", h.Me)
}
