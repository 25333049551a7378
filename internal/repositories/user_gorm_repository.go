package repositories

import (
	"errors"
	"fmt"

	"movieapi/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository. Favorites
// live in their own table keyed by (user_id, movie_id).
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

func withFavorites(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Favorites", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at").Order("movie_id")
	})
}

// hydrate copies the preloaded favorites rows into FavoriteMovies.
func hydrate(user *models.User) {
	user.FavoriteMovies = make([]string, 0, len(user.Favorites))
	for _, f := range user.Favorites {
		user.FavoriteMovies = append(user.FavoriteMovies, f.MovieID)
	}
	user.Favorites = nil
}

func translate(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func findUser(tx *gorm.DB, username string) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("user with username %s", username))
	}
	return &user, nil
}

func reloadUser(tx *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := withFavorites(tx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("failed to reload user %s", id))
	}
	hydrate(&user)
	return &user, nil
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Omit("Favorites").Create(user).Error; err != nil {
		return translate(err, "failed to create user")
	}
	user.FavoriteMovies = []string{}
	return nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := withFavorites(r.db).First(&user, "username = ?", username).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("user with username %s", username))
	}
	hydrate(&user)
	return &user, nil
}

// GetAll retrieves every user.
func (r *GORMUserRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	if err := withFavorites(r.db).Order("created_at").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	for i := range users {
		hydrate(&users[i])
	}
	return users, nil
}

// Update replaces the mutable fields of the user named username.
func (r *GORMUserRepository) Update(username string, fields models.UserFields) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}

		res := tx.Model(user).
			Select("username", "password", "email", "birthday").
			Updates(models.User{
				Username: fields.Username,
				Password: fields.Password,
				Email:    fields.Email,
				Birthday: fields.Birthday,
			})
		if res.Error != nil {
			return translate(res.Error, fmt.Sprintf("failed to update user %s", username))
		}

		updated, err = reloadUser(tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete deletes a user and its favorites.
func (r *GORMUserRepository) Delete(username string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.FavoriteMovie{}).Error; err != nil {
			return fmt.Errorf("failed to delete favorites of %s: %w", username, err)
		}
		if err := tx.Delete(&models.User{}, "id = ?", user.ID).Error; err != nil {
			return fmt.Errorf("failed to delete user %s: %w", username, err)
		}
		return nil
	})
}

// AddFavorite inserts movieID into the user's favorites. Existing rows are left untouched.
func (r *GORMUserRepository) AddFavorite(username, movieID string) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}

		fav := models.FavoriteMovie{UserID: user.ID, MovieID: movieID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
			return fmt.Errorf("failed to add favorite %s for %s: %w", movieID, username, err)
		}

		updated, err = reloadUser(tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveFavorite deletes movieID from the user's favorites.
func (r *GORMUserRepository) RemoveFavorite(username, movieID string) (*models.User, error) {
	var updated *models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user, err := findUser(tx, username)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND movie_id = ?", user.ID, movieID).
			Delete(&models.FavoriteMovie{}).Error; err != nil {
			return fmt.Errorf("failed to remove favorite %s for %s: %w", movieID, username, err)
		}

		updated, err = reloadUser(tx, user.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
