package repositories

import "movieapi/internal/models"

// MovieRepository defines the interface for movie data access. Lists are
// returned in insertion order.
type MovieRepository interface {
	GetAll() ([]models.Movie, error)
	GetByTitle(title string) (*models.Movie, error)
	FindByGenre(name string) ([]models.Movie, error)
	FindByDirector(name string) ([]models.Movie, error)
	Create(movie *models.Movie) error
	Count() (int64, error)
}
