package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestAggregateKarma_QueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLeaderboardRepository(db)

	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"user_id", "username", "post_karma", "comment_karma"}).
		AddRow(1, "alice", 10, 2).
		AddRow(2, "bob", 0, 3)

	mock.ExpectQuery(regexp.QuoteMeta(aggregateKarmaQuery)).
		WithArgs(5, 1, since, since, 5, 1).
		WillReturnRows(rows)

	entries, err := repo.AggregateKarma(testCtx, since, 5, 1)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 12, entries[0].Karma)
	assert.Equal(t, 3, entries[1].Karma)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAggregateKarma_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLeaderboardRepository(db)

	since := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta(aggregateKarmaQuery)).
		WillReturnError(gorm.ErrInvalidDB)

	_, err := repo.AggregateKarma(testCtx, since, 5, 1)
	assert.Error(t, err)
}
