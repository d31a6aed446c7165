package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/pablozoani/gl-exercise/internal/auth/dto"
	"github.com/pablozoani/gl-exercise/internal/auth/service"
	"github.com/pablozoani/gl-exercise/internal/auth/validation"
	autherror "github.com/pablozoani/gl-exercise/internal/errors"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewErrorResponse(fiber.StatusBadRequest, "invalid request body"))
	}

	if fieldErrs := validation.ValidateSignUp(input); len(fieldErrs) > 0 {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fe.Message)
		}

		return c.Status(fiber.StatusBadRequest).
			JSON(dto.NewErrorResponse(fiber.StatusBadRequest, details...))
	}

	resp, err := h.userService.SignUp(c.Context(), input)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email, _ := c.Locals(subjectLocal).(string)

	resp, err := h.userService.Login(c.Context(), email)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// renderError maps service errors onto the fixed error envelope. Only the
// two recognized translations get dedicated statuses; everything else is an
// internal error with the raw failure message.
func renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusConflict).
			JSON(dto.NewErrorResponse(fiber.StatusConflict, err.Error()))
	case errors.Is(err, autherror.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.NewErrorResponse(fiber.StatusNotFound, err.Error()))
	default:
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)

		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.NewErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
