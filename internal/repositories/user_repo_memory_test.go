package repositories_test

import (
	"testing"

	"movieapi/internal/models"
	"movieapi/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_Create(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()

	user := &models.User{Username: "alice1", Password: "digest", Email: "a@x.com"}
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, []string{}, user.FavoriteMovies)

	err := repo.Create(&models.User{Username: "alice1", Password: "other", Email: "b@x.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "alice1", Password: "d", Email: "a@x.com"}))

	u, err := repo.AddFavorite("alice1", "m1")
	require.NoError(t, err)
	u.FavoriteMovies[0] = "tampered"

	fresh, err := repo.GetByUsername("alice1")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, fresh.FavoriteMovies)
}

func TestMemoryUserRepository_Update(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "alice1", Password: "d", Email: "a@x.com"}))
	require.NoError(t, repo.Create(&models.User{Username: "bobby1", Password: "d", Email: "b@x.com"}))
	_, err := repo.AddFavorite("alice1", "m1")
	require.NoError(t, err)

	_, err = repo.Update("alice1", models.UserFields{Username: "bobby1", Password: "x", Email: "c@x.com"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	updated, err := repo.Update("alice1", models.UserFields{Username: "alice2", Password: "x", Email: "c@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, []string{"m1"}, updated.FavoriteMovies)

	_, err = repo.GetByUsername("alice1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Update("ghost1", models.UserFields{Username: "ghost1"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMemoryUserRepository_Delete(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	require.NoError(t, repo.Create(&models.User{Username: "alice1", Password: "d", Email: "a@x.com"}))

	require.NoError(t, repo.Delete("alice1"))
	assert.ErrorIs(t, repo.Delete("alice1"), repositories.ErrNotFound)

	users, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, users)
}
