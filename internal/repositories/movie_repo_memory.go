package repositories

import (
	"fmt"
	"sync"
	"time"

	"movieapi/internal/models"

	"github.com/google/uuid"
)

// MemoryMovieRepository is an in-memory implementation of MovieRepository.
type MemoryMovieRepository struct {
	movies []models.Movie
	mu     sync.RWMutex
}

// NewMemoryMovieRepository creates a new instance of MemoryMovieRepository.
func NewMemoryMovieRepository() *MemoryMovieRepository {
	return &MemoryMovieRepository{}
}

// GetAll returns all movies.
func (r *MemoryMovieRepository) GetAll() ([]models.Movie, error) {
	return r.filter(func(models.Movie) bool { return true }), nil
}

// GetByTitle returns the first movie with the given title.
func (r *MemoryMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	matches := r.filter(func(m models.Movie) bool { return m.Title == title })
	if len(matches) == 0 {
		return nil, fmt.Errorf("movie with title %s: %w", title, ErrNotFound)
	}
	return &matches[0], nil
}

// FindByGenre returns the movies of the named genre.
func (r *MemoryMovieRepository) FindByGenre(name string) ([]models.Movie, error) {
	return r.filter(func(m models.Movie) bool { return m.Genre.Name == name }), nil
}

// FindByDirector returns the movies by the named director.
func (r *MemoryMovieRepository) FindByDirector(name string) ([]models.Movie, error) {
	return r.filter(func(m models.Movie) bool { return m.Director.Name == name }), nil
}

// Create adds a new movie.
func (r *MemoryMovieRepository) Create(movie *models.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if movie.Actors == nil {
		movie.Actors = []string{}
	}
	movie.CreatedAt = time.Now()
	r.movies = append(r.movies, cloneMovie(*movie))
	return nil
}

// Count returns the number of stored movies.
func (r *MemoryMovieRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.movies)), nil
}

func (r *MemoryMovieRepository) filter(keep func(models.Movie) bool) []models.Movie {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Movie{}
	for _, m := range r.movies {
		if keep(m) {
			out = append(out, cloneMovie(m))
		}
	}
	return out
}

func cloneMovie(m models.Movie) models.Movie {
	m.Actors = append([]string{}, m.Actors...)
	return m
}
