package handlers

import (
	"errors"
	"fmt"

	"movieapi/internal/middleware"
	"movieapi/internal/models"
	"movieapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and their favorites.
type UserHandler struct {
	service    *services.UserService
	policy     services.AccessPolicy
	exposeHash bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService, policy services.AccessPolicy, exposeHash bool) *UserHandler {
	return &UserHandler{
		service:    service,
		policy:     policy,
		exposeHash: exposeHash,
	}
}

// present strips the password digest unless the deployment exposes it.
func present(u models.User, exposeHash bool) models.User {
	if exposeHash {
		return u
	}
	return u.Redacted()
}

// RegisterRoutes registers the user routes. auth guards every route except registration.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/register", h.HandleRegister)

	if h.policy.PublicUserList {
		userRoutes.Get("/all", h.HandleGetUsers)
	} else {
		userRoutes.Get("/all", auth, h.HandleGetUsers)
	}

	userRoutes.Get("/:Username", auth, h.HandleGetUser)
	userRoutes.Put("/update/:Username", auth, h.HandleUpdateUser)
	userRoutes.Delete("/remove/:Username", auth, h.HandleDeleteUser)

	userRoutes.Post("/:Username/favorites/:MovieID", auth, h.HandleAddFavorite)
	userRoutes.Delete("/:Username/favorites/:MovieID", auth, h.HandleRemoveFavorite)
	// Older clients use explicit add/remove segments.
	userRoutes.Post("/:Username/favorites/add/:MovieID", auth, h.HandleAddFavorite)
	userRoutes.Delete("/:Username/favorites/remove/:MovieID", auth, h.HandleRemoveFavorite)
}

// HandleRegister creates a new user.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var in services.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}

	user, err := h.service.Register(in)
	if err != nil {
		return respondError(c, err, "Registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(present(*user, h.exposeHash))
}

// HandleGetUsers lists every user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAll()
	if err != nil {
		return respondError(c, err, "Could not retrieve users")
	}
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, present(u, h.exposeHash))
	}
	return c.JSON(out)
}

// HandleGetUser retrieves a single user by username.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	username := c.Params("Username")
	user, err := h.service.GetByUsername(username)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("User %s not found", username))
	}
	return c.JSON(present(*user, h.exposeHash))
}

// HandleUpdateUser replaces the profile of the authenticated user.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	username := c.Params("Username")
	actor := middleware.Username(c)

	// Ownership is settled before the body is even parsed.
	if err := h.policy.Authorize(services.ActionUpdateUser, actor, username); err != nil {
		return respondError(c, err, "Update failed")
	}

	var in services.UserInput
	if err := c.BodyParser(&in); err != nil {
		return badBody(c, err)
	}

	user, err := h.service.Update(actor, username, in)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Could not update user %s", username))
	}
	return c.JSON(present(*user, h.exposeHash))
}

// HandleDeleteUser removes a user. Bodies are plain text.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	username := c.Params("Username")

	err := h.service.Delete(middleware.Username(c), username)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).SendString(username + " was deleted.")
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusBadRequest).SendString(username + " was not found")
	default:
		return respondError(c, err, fmt.Sprintf("Could not delete user %s", username))
	}
}

// HandleAddFavorite adds a movie id to the user's favorites.
func (h *UserHandler) HandleAddFavorite(c *fiber.Ctx) error {
	username, movieID := c.Params("Username"), c.Params("MovieID")

	user, err := h.service.AddFavorite(middleware.Username(c), username, movieID)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Could not add favorite for %s", username))
	}
	return c.JSON(present(*user, h.exposeHash))
}

// HandleRemoveFavorite removes a movie id from the user's favorites.
func (h *UserHandler) HandleRemoveFavorite(c *fiber.Ctx) error {
	username, movieID := c.Params("Username"), c.Params("MovieID")

	user, err := h.service.RemoveFavorite(middleware.Username(c), username, movieID)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Could not remove favorite for %s", username))
	}
	return c.JSON(present(*user, h.exposeHash))
}
