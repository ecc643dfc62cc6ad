package repository

import (
	"context"
	"testing"
	"time"

	"commune/internal/database"
	"commune/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedPost(t *testing.T, db *gorm.DB, userID uint, content string, at time.Time) *models.Post {
	t.Helper()

	post := &models.Post{UserID: userID, Content: content, CreatedAt: at, UpdatedAt: at}
	require.NoError(t, db.Create(post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, userID, postID uint, parentID *uint, content string, at time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		UserID:    userID,
		PostID:    postID,
		ParentID:  parentID,
		Content:   content,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func fetchPost(t *testing.T, db *gorm.DB, id uint) *models.Post {
	t.Helper()

	var post models.Post
	require.NoError(t, db.First(&post, id).Error)
	return &post
}

func fetchComment(t *testing.T, db *gorm.DB, id uint) *models.Comment {
	t.Helper()

	var comment models.Comment
	require.NoError(t, db.First(&comment, id).Error)
	return &comment
}

var testCtx = context.Background()
