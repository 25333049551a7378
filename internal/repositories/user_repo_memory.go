package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"movieapi/internal/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is an in-memory implementation of UserRepository.
type MemoryUserRepository struct {
	users      map[string]models.User // keyed by ID
	byUsername map[string]string
	mu         sync.RWMutex
}

// NewMemoryUserRepository creates a new instance of MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		users:      make(map[string]models.User),
		byUsername: make(map[string]string),
	}
}

// Create adds a new user.
func (r *MemoryUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return fmt.Errorf("failed to create user %s: %w", user.Username, ErrDuplicate)
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.FavoriteMovies = []string{}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	r.users[user.ID] = cloneUser(*user)
	r.byUsername[user.Username] = user.ID
	return nil
}

// GetByUsername returns a user by its username.
func (r *MemoryUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, err := r.lookup(username)
	if err != nil {
		return nil, err
	}
	out := cloneUser(user)
	return &out, nil
}

// GetAll returns all users in creation order.
func (r *MemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, cloneUser(u))
	}
	sort.SliceStable(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID < users[j].ID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

// Update replaces the mutable fields of a user.
func (r *MemoryUserRepository) Update(username string, fields models.UserFields) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(username)
	if err != nil {
		return nil, err
	}
	if fields.Username != username {
		if _, taken := r.byUsername[fields.Username]; taken {
			return nil, fmt.Errorf("failed to update user %s: %w", username, ErrDuplicate)
		}
	}

	user.Username = fields.Username
	user.Password = fields.Password
	user.Email = fields.Email
	user.Birthday = fields.Birthday
	user.UpdatedAt = time.Now()

	delete(r.byUsername, username)
	r.byUsername[user.Username] = user.ID
	return r.store(user), nil
}

// Delete removes a user by its username.
func (r *MemoryUserRepository) Delete(username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(username)
	if err != nil {
		return err
	}
	delete(r.users, user.ID)
	delete(r.byUsername, username)
	return nil
}

// AddFavorite appends movieID unless it is already present.
func (r *MemoryUserRepository) AddFavorite(username, movieID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(username)
	if err != nil {
		return nil, err
	}
	for _, id := range user.FavoriteMovies {
		if id == movieID {
			return r.store(user), nil
		}
	}
	user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	return r.store(user), nil
}

// RemoveFavorite drops every occurrence of movieID.
func (r *MemoryUserRepository) RemoveFavorite(username, movieID string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(username)
	if err != nil {
		return nil, err
	}
	kept := make([]string, 0, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept
	return r.store(user), nil
}

// lookup must be called with mu held.
func (r *MemoryUserRepository) lookup(username string) (models.User, error) {
	id, ok := r.byUsername[username]
	if !ok {
		return models.User{}, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
	}
	return r.users[id], nil
}

// store must be called with mu held for writing.
func (r *MemoryUserRepository) store(user models.User) *models.User {
	r.users[user.ID] = cloneUser(user)
	out := cloneUser(user)
	return &out
}

func cloneUser(u models.User) models.User {
	u.FavoriteMovies = append([]string{}, u.FavoriteMovies...)
	if u.Birthday != nil {
		b := *u.Birthday
		u.Birthday = &b
	}
	return u
}
