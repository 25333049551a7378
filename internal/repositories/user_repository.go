package repositories

import "movieapi/internal/models"

// UserRepository defines the interface for user data access. Users are
// addressed by Username. Every method is a single atomic storage operation.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	// Update replaces Username, Password, Email and Birthday.
	Update(username string, fields models.UserFields) (*models.User, error)
	Delete(username string) error
	// AddFavorite inserts movieID into the favorites set; present ids are kept once.
	AddFavorite(username, movieID string) (*models.User, error)
	// RemoveFavorite removes movieID from the favorites set; absent ids are ignored.
	RemoveFavorite(username, movieID string) (*models.User, error)
}
