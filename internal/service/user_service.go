package service

import (
	"context"
	"errors"
	"strings"

	"commune/internal/models"
	"commune/internal/repository"

	"gorm.io/gorm"
)

const maxUsernameLen = 150

// UserService resolves caller-supplied usernames to stable user identities.
// Identity is trusted as given; there is no credential check.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Resolve returns the user for the given username, creating one on first
// reference. Safe under concurrent first use of the same name.
func (s *UserService) Resolve(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	if len(username) > maxUsernameLen {
		return nil, models.NewValidationError("Username too long (max 150 characters)")
	}
	return s.userRepo.GetOrCreateByUsername(ctx, username)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, err
	}
	return user, nil
}
