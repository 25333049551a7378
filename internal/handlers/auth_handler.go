package handlers

import (
	"errors"

	"movieapi/internal/logging"
	"movieapi/internal/metrics"
	"movieapi/internal/services"
	"movieapi/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	exposeHash  bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, exposeHash bool) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		exposeHash:  exposeHash,
	}
}

// RegisterRoutes registers the authentication routes. limit, when not nil,
// throttles login attempts.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, limit fiber.Handler) {
	if limit != nil {
		router.Post("/login", limit, h.HandleLogin)
		return
	}
	router.Post("/login", h.HandleLogin)
}

// LoginRequest represents the credentials of a login. They are read from the
// JSON body or, when the body is empty, from the query string.
type LoginRequest struct {
	Username string `json:"Username" query:"Username" validate:"required"`
	Password string `json:"Password" query:"Password" validate:"required"`
}

// HandleLogin checks credentials and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badBody(c, err)
		}
	} else if err := c.QueryParser(&req); err != nil {
		return badBody(c, err)
	}

	if err := validation.Struct(req); err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  verr.Fields,
			})
		}
		return respondError(c, err, "Authentication failed")
	}

	token, user, err := h.authService.LoginUser(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			logging.Info().Str("username", req.Username).Msg("Rejected login")
		} else {
			metrics.LoginAttempts.WithLabelValues("error").Inc()
		}
		return respondError(c, err, "Authentication failed")
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return c.JSON(fiber.Map{
		"user":  present(*user, h.exposeHash),
		"token": token,
	})
}
