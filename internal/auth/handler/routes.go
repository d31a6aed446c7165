package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pablozoani/gl-exercise/internal/auth/service"
)

// RegisterRoutes mounts the HTTP surface. Sign-up is open to all callers;
// every other route requires an authenticated subject.
func RegisterRoutes(app *fiber.App, h *AuthHandler, tokens service.TokenGenerator) {
	app.Use(Authenticate(tokens))

	app.Post("/sign-up", h.SignUp)
	app.Get("/login", RequireSubject(), h.Login)
}
