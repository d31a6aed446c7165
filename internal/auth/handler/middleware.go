package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pablozoani/gl-exercise/internal/auth/dto"
	"github.com/pablozoani/gl-exercise/internal/auth/service"
)

// subjectLocal keys the verified token subject in the request locals. The
// subject travels with the request, never through package state.
const subjectLocal = "auth.subject"

const bearerPrefix = "Bearer "

// Authenticate verifies a bearer token when the Authorization header
// carries one and stores the subject claim in the request locals. An
// invalid, malformed, or expired token is rejected with a 403 body. A
// request without a bearer header passes through unauthenticated; route
// authorization then rejects it downstream.
func Authenticate(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return c.Next()
		}

		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return c.Status(fiber.StatusForbidden).
				JSON(dto.NewErrorResponse(fiber.StatusForbidden, err.Error()))
		}

		if claims.Subject != "" {
			c.Locals(subjectLocal, claims.Subject)
		}

		return c.Next()
	}
}

// RequireSubject guards routes that need an authenticated subject.
func RequireSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if subject, ok := c.Locals(subjectLocal).(string); !ok || subject == "" {
			return c.Status(fiber.StatusForbidden).
				JSON(dto.NewErrorResponse(fiber.StatusForbidden, "authentication required"))
		}

		return c.Next()
	}
}
