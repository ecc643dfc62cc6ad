package repository

import (
	"context"
	"time"

	"commune/internal/models"

	"gorm.io/gorm"
)

// LeaderboardRepository aggregates windowed karma from the like ledger.
type LeaderboardRepository interface {
	// AggregateKarma scans likes with created_at >= since (inclusive lower
	// bound), attributes weighted karma to the author of each liked post or
	// comment, and returns one entry per user with karma > 0, unordered.
	AggregateKarma(ctx context.Context, since time.Time, postWeight, commentWeight int) ([]*models.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// aggregateKarmaQuery counts in-window likes per content author, split by
// target kind. Weights are applied in the SELECT so the window scan happens
// once per kind. Portable SQL: runs unchanged on postgres and sqlite.
const aggregateKarmaQuery = `
SELECT users.id AS user_id,
       users.username AS username,
       COALESCE(p.post_likes, 0) * ? AS post_karma,
       COALESCE(c.comment_likes, 0) * ? AS comment_karma
FROM users
LEFT JOIN (
    SELECT posts.user_id AS author_id, COUNT(*) AS post_likes
    FROM likes
    JOIN posts ON posts.id = likes.post_id
    WHERE likes.created_at >= ?
    GROUP BY posts.user_id
) p ON p.author_id = users.id
LEFT JOIN (
    SELECT comments.user_id AS author_id, COUNT(*) AS comment_likes
    FROM likes
    JOIN comments ON comments.id = likes.comment_id
    WHERE likes.created_at >= ?
    GROUP BY comments.user_id
) c ON c.author_id = users.id
WHERE COALESCE(p.post_likes, 0) * ? + COALESCE(c.comment_likes, 0) * ? > 0`

func (r *leaderboardRepository) AggregateKarma(
	ctx context.Context,
	since time.Time,
	postWeight, commentWeight int,
) ([]*models.LeaderboardEntry, error) {
	var entries []*models.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Raw(aggregateKarmaQuery, postWeight, commentWeight, since, since, postWeight, commentWeight).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		e.Karma = e.PostKarma + e.CommentKarma
	}
	return entries, nil
}
