package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetOrCreateByUsername_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	first, err := repo.GetOrCreateByUsername(testCtx, "alice")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.GetOrCreateByUsername(testCtx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetByUsername_Missing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByUsername(testCtx, "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	alice := seedUser(t, db, "alice")

	user, err := repo.GetByID(testCtx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = repo.GetByID(testCtx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
