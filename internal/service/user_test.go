package service

import (
	"testing"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	created := &models.User{Username: "octocat", Nickname: "Octo"}
	require.NoError(t, repo.Create(created))

	user, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Username)

	_, err = service.GetByID(999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserGetOrCreate(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	first, err := service.GetOrCreate("octocat", "Octo")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := service.GetOrCreate("octocat", "Renamed")
	require.NoError(t, err)

	// Existing users keep their stored nickname
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Octo", second.Nickname)
}
