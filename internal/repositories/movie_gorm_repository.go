package repositories

import (
	"errors"
	"fmt"

	"movieapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMMovieRepository is a GORM implementation of MovieRepository.
type GORMMovieRepository struct {
	db *gorm.DB
}

// NewGORMMovieRepository creates a new instance of GORMMovieRepository.
func NewGORMMovieRepository(db *gorm.DB) *GORMMovieRepository {
	return &GORMMovieRepository{
		db: db,
	}
}

func (r *GORMMovieRepository) ordered() *gorm.DB {
	return r.db.Order("created_at").Order("id")
}

// GetAll retrieves all movies from the database.
func (r *GORMMovieRepository) GetAll() ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.ordered().Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get all movies: %w", err)
	}
	return movies, nil
}

// GetByTitle retrieves the first movie whose title matches exactly.
func (r *GORMMovieRepository) GetByTitle(title string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.ordered().First(&movie, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("movie with title %s: %w", title, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get movie by title %s: %w", title, err)
	}
	return &movie, nil
}

// FindByGenre retrieves all movies of the named genre.
func (r *GORMMovieRepository) FindByGenre(name string) ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.ordered().Where("genre_name = ?", name).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get movies for genre %s: %w", name, err)
	}
	return movies, nil
}

// FindByDirector retrieves all movies by the named director.
func (r *GORMMovieRepository) FindByDirector(name string) ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.ordered().Where("director_name = ?", name).Find(&movies).Error; err != nil {
		return nil, fmt.Errorf("failed to get movies for director %s: %w", name, err)
	}
	return movies, nil
}

// Create creates a new movie in the database.
func (r *GORMMovieRepository) Create(movie *models.Movie) error {
	if movie.ID == "" {
		movie.ID = uuid.New().String()
	}
	if movie.Actors == nil {
		movie.Actors = []string{}
	}
	if err := r.db.Create(movie).Error; err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

// Count returns the number of stored movies.
func (r *GORMMovieRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Movie{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}
