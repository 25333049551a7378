package handlers

import (
	"errors"

	"movieapi/internal/logging"
	"movieapi/internal/services"
	"movieapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// FallbackMessage is the body of every response produced by the global error handler.
const FallbackMessage = "Oh no, it looks like something went wrong!"

// respondError maps a service error to a status code and JSON body.
// message describes the failed operation for 500 responses.
func respondError(c *fiber.Ctx, err error, message string) error {
	var verr *validation.Errors
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Permission denied",
			"error":   err.Error(),
		})
	case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	default:
		logging.Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(message)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": message,
			"error":   err.Error(),
		})
	}
}

// badBody answers a request whose body could not be parsed.
func badBody(c *fiber.Ctx, err error) error {
	logging.Debug().Err(err).Str("path", c.Path()).Msg("Error parsing request body")
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// ErrorHandler is the global fallback for errors returned by handlers and
// recovered panics. Fiber's own errors keep their status code.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code != fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{
			"message": fe.Message,
		})
	}

	logging.Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("Unhandled error")
	return c.Status(fiber.StatusInternalServerError).SendString(FallbackMessage)
}
