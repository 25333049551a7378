package services

import (
	"fmt"

	"movieapi/internal/models"
	"movieapi/internal/repositories"
)

// MovieService handles read access to the catalog.
type MovieService struct {
	repo repositories.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repositories.MovieRepository) *MovieService {
	return &MovieService{
		repo: repo,
	}
}

// GetAllMovies retrieves all movies.
func (s *MovieService) GetAllMovies() ([]models.Movie, error) {
	movies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// GetMovieByTitle retrieves the movie with exactly this title.
func (s *MovieService) GetMovieByTitle(title string) (*models.Movie, error) {
	movie, err := s.repo.GetByTitle(title)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return movie, nil
}

// GetGenre folds every movie of the genre into one summary. Name and
// description come from the first matching movie.
func (s *MovieService) GetGenre(name string) (*models.GenreSummary, error) {
	movies, err := s.repo.FindByGenre(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get genre %s: %w", name, err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("genre %s: %w", name, ErrNotFound)
	}
	return &models.GenreSummary{
		Name:        movies[0].Genre.Name,
		Description: movies[0].Genre.Description,
		Movies:      movies,
	}, nil
}

// GetDirector folds every movie of the director into one summary.
func (s *MovieService) GetDirector(name string) (*models.DirectorSummary, error) {
	movies, err := s.repo.FindByDirector(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get director %s: %w", name, err)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("director %s: %w", name, ErrNotFound)
	}
	return &models.DirectorSummary{
		Name:   movies[0].Director.Name,
		Bio:    movies[0].Director.Bio,
		Movies: movies,
	}, nil
}

// CreateMovie stores a movie. Used for seeding; the API has no write route.
func (s *MovieService) CreateMovie(movie *models.Movie) error {
	if movie.Title == "" || movie.Description == "" {
		return fmt.Errorf("movie needs a title and a description: %w", ErrValidation)
	}
	return s.repo.Create(movie)
}

// Seed inserts movies when the catalog is empty and reports how many were added.
func (s *MovieService) Seed(movies []models.Movie) (int, error) {
	n, err := s.repo.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range movies {
		if err := s.CreateMovie(&movies[i]); err != nil {
			return i, fmt.Errorf("failed to seed movie %q: %w", movies[i].Title, err)
		}
	}
	return len(movies), nil
}
