package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arcisai/crm-backend/internal/application/dto"
	"github.com/arcisai/crm-backend/internal/domain"
)

// respondError translates domain errors into HTTP status codes with the
// `{success:false, code, message}` body. Anything unrecognized is a 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("UNAUTHORIZED", "invalid credentials"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("FORBIDDEN", err.Error()))
	case errors.Is(err, domain.ErrActorNotAllowed):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("ACTOR_NOT_ALLOWED", err.Error()))
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("NOT_FOUND", err.Error()))
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("INVALID_TRANSITION", err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail("INSUFFICIENT_STOCK", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("INTERNAL", "internal server error"))
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_BODY", "malformed request body"))
}
