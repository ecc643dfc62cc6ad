// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"commune/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetOrCreateByUsername(ctx context.Context, username string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetOrCreateByUsername atomically resolves a username to a user, creating
// one on first reference. The insert races through the unique username
// index: ON CONFLICT DO NOTHING means two simultaneous first uses end up
// with the same row, and the loser re-reads it.
func (r *userRepository) GetOrCreateByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{Username: username}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	if user.ID != 0 {
		return user, nil
	}
	return r.GetByUsername(ctx, username)
}
