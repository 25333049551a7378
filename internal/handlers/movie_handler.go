package handlers

import (
	"fmt"

	"movieapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MovieHandler handles HTTP requests for the movie catalog.
type MovieHandler struct {
	service *services.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service *services.MovieService) *MovieHandler {
	return &MovieHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes behind guard. A nil guard
// leaves the catalog public.
func (h *MovieHandler) RegisterRoutes(router fiber.Router, guard fiber.Handler) {
	route := func(path string, handler fiber.Handler) {
		if guard != nil {
			router.Get(path, guard, handler)
			return
		}
		router.Get(path, handler)
	}

	route("/movies", h.HandleGetMovies)
	route("/movies/:title", h.HandleGetMovie)
	route("/genres/:name", h.HandleGetGenre)
	route("/directors/:name", h.HandleGetDirector)
}

// HandleGetMovies lists every movie.
func (h *MovieHandler) HandleGetMovies(c *fiber.Ctx) error {
	movies, err := h.service.GetAllMovies()
	if err != nil {
		return respondError(c, err, "Error fetching movies")
	}
	return c.JSON(fiber.Map{
		"message": "List of all movies",
		"movies":  movies,
	})
}

// HandleGetMovie retrieves one movie by exact title.
func (h *MovieHandler) HandleGetMovie(c *fiber.Ctx) error {
	title := c.Params("title")
	movie, err := h.service.GetMovieByTitle(title)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Movie %s not found", title))
	}
	return c.JSON(fiber.Map{
		"message": "Movie details:",
		"movie":   movie,
	})
}

// HandleGetGenre returns the genre summary with all of its movies.
func (h *MovieHandler) HandleGetGenre(c *fiber.Ctx) error {
	name := c.Params("name")
	genre, err := h.service.GetGenre(name)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Genre %s not found", name))
	}
	return c.JSON(fiber.Map{
		"message": "Genre details:",
		"genre":   genre,
	})
}

// HandleGetDirector returns the director summary with all of their movies.
func (h *MovieHandler) HandleGetDirector(c *fiber.Ctx) error {
	name := c.Params("name")
	director, err := h.service.GetDirector(name)
	if err != nil {
		return respondError(c, err, fmt.Sprintf("Director %s not found", name))
	}
	return c.JSON(fiber.Map{
		"message":  "Director details:",
		"director": director,
	})
}
