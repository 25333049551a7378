package services

import (
	"errors"
	"fmt"
	"time"

	"movieapi/internal/credentials"
	"movieapi/internal/metrics"
	"movieapi/internal/models"
	"movieapi/internal/repositories"
	"movieapi/internal/validation"
)

// BirthdayLayout is the accepted format of the Birthday field.
const BirthdayLayout = "2006-01-02"

// UserInput is the validated body of registration and update requests.
type UserInput struct {
	Username string `json:"Username" validate:"required,min=5,alphanum"`
	Password string `json:"Password" validate:"required"`
	Email    string `json:"Email" validate:"required,email"`
	Birthday string `json:"Birthday" validate:"omitempty,datetime=2006-01-02"`
}

func (in UserInput) birthday() (*time.Time, error) {
	if in.Birthday == "" {
		return nil, nil
	}
	t, err := time.Parse(BirthdayLayout, in.Birthday)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birthday: %w", err)
	}
	return &t, nil
}

// UserService handles registration, profile changes and favorites.
type UserService struct {
	repo           repositories.UserRepository
	policy         AccessPolicy
	publisher      EventPublisher
	rehashOnUpdate bool
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, policy AccessPolicy, publisher EventPublisher, rehashOnUpdate bool) *UserService {
	return &UserService{
		repo:           repo,
		policy:         policy,
		publisher:      publisher,
		rehashOnUpdate: rehashOnUpdate,
	}
}

// Register validates the input, rejects taken usernames and stores the user
// with a hashed password and no favorites.
func (s *UserService) Register(in UserInput) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	birthday, err := in.birthday()
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByUsername(in.Username); err == nil {
		return nil, fmt.Errorf("%s already exists: %w", in.Username, ErrConflict)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	digest, err := credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: in.Username,
		Password: digest,
		Email:    in.Email,
		Birthday: birthday,
	}
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%s already exists: %w", in.Username, ErrConflict)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	publish(s.publisher, UserEvent{Event: EventUserRegistered, Username: user.Username})
	return user, nil
}

// GetByUsername retrieves a single user.
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return user, nil
}

// GetAll retrieves every user.
func (s *UserService) GetAll() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update replaces Username, Password, Email and Birthday of the user named
// username. Only that user may do so.
func (s *UserService) Update(actor, username string, in UserInput) (*models.User, error) {
	if err := s.policy.Authorize(ActionUpdateUser, actor, username); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	birthday, err := in.birthday()
	if err != nil {
		return nil, err
	}

	password := in.Password
	if s.rehashOnUpdate {
		if password, err = credentials.Hash(in.Password); err != nil {
			return nil, err
		}
	}

	user, err := s.repo.Update(username, models.UserFields{
		Username: in.Username,
		Password: password,
		Email:    in.Email,
		Birthday: birthday,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	publish(s.publisher, UserEvent{Event: EventUserUpdated, Username: user.Username})
	return user, nil
}

// Delete removes the user named username.
func (s *UserService) Delete(actor, username string) error {
	if err := s.policy.Authorize(ActionDeleteUser, actor, username); err != nil {
		return err
	}
	if err := s.repo.Delete(username); err != nil {
		return mapRepoError(err)
	}

	publish(s.publisher, UserEvent{Event: EventUserDeleted, Username: username})
	return nil
}

// AddFavorite adds movieID to the user's favorites. Adding a present id is a no-op.
func (s *UserService) AddFavorite(actor, username, movieID string) (*models.User, error) {
	if err := s.policy.Authorize(ActionEditFavorites, actor, username); err != nil {
		return nil, err
	}
	user, err := s.repo.AddFavorite(username, movieID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	metrics.FavoriteMutations.WithLabelValues("add").Inc()
	publish(s.publisher, UserEvent{Event: EventFavoriteAdded, Username: username, MovieID: movieID})
	return user, nil
}

// RemoveFavorite removes movieID from the user's favorites. Removing an absent id is a no-op.
func (s *UserService) RemoveFavorite(actor, username, movieID string) (*models.User, error) {
	if err := s.policy.Authorize(ActionEditFavorites, actor, username); err != nil {
		return nil, err
	}
	user, err := s.repo.RemoveFavorite(username, movieID)
	if err != nil {
		return nil, mapRepoError(err)
	}

	metrics.FavoriteMutations.WithLabelValues("remove").Inc()
	publish(s.publisher, UserEvent{Event: EventFavoriteRemoved, Username: username, MovieID: movieID})
	return user, nil
}

// mapRepoError translates repository sentinels into service error kinds.
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	case errors.Is(err, repositories.ErrDuplicate):
		return fmt.Errorf("%v: %w", err, ErrConflict)
	default:
		return err
	}
}
