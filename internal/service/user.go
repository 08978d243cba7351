package service

import (
	"errors"
	"fmt"

	"devmatch-backend/internal/database/models"
	apperrors "devmatch-backend/internal/errors"
	"devmatch-backend/internal/repository"

	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo repository.UserRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id int64) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetOrCreate resolves a username to a user, creating the record on first
// sight. The API boundary calls this with identity-provider claims so every
// request carries a concrete user row.
func (s *UserService) GetOrCreate(username, nickname string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Username: username,
		Nickname: nickname,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
