package repository

import (
	"context"
	"time"

	"commune/internal/cache"
	"commune/internal/models"

	"gorm.io/gorm"
)

// LikeRepository is the like ledger: the authoritative record of which
// actor liked which target. All mutations are idempotent and keep the
// target's denormalized like_count in step inside one transaction.
type LikeRepository interface {
	// LikePost records a like; returns false when the pair already existed.
	LikePost(ctx context.Context, userID, postID uint) (bool, error)
	// UnlikePost removes a like; returns false when there was none.
	UnlikePost(ctx context.Context, userID, postID uint) (bool, error)
	LikeComment(ctx context.Context, userID, commentID uint) (bool, error)
	UnlikeComment(ctx context.Context, userID, commentID uint) (bool, error)

	// CountPostLikes and CountCommentLikes recompute a counter from the
	// ledger. Used to verify the denormalized columns never drift.
	CountPostLikes(ctx context.Context, postID uint) (int64, error)
	CountCommentLikes(ctx context.Context, commentID uint) (int64, error)
}

type likeRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLikeRepository creates a new LikeRepository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// NewLikeRepositoryWithClock creates a LikeRepository with a custom clock,
// used by tests that need deterministic like timestamps.
func NewLikeRepositoryWithClock(db *gorm.DB, now func() time.Time) LikeRepository {
	return &likeRepository{db: db, now: now}
}

func (r *likeRepository) LikePost(ctx context.Context, userID, postID uint) (bool, error) {
	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The unique (user_id, post_id) index decides the race: a repeat
		// like conflicts and affects zero rows.
		res := tx.Exec(
			`INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, ?)
			 ON CONFLICT (user_id, post_id) DO NOTHING`,
			userID, postID, r.now(),
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		inserted = true
		return tx.Exec(`UPDATE posts SET like_count = like_count + 1 WHERE id = ?`, postID).Error
	})
	if err == nil && inserted {
		cache.InvalidatePost(ctx, postID)
		cache.InvalidateLeaderboard(ctx)
	}
	return inserted, err
}

func (r *likeRepository) UnlikePost(ctx context.Context, userID, postID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		// like_count never drops below zero even if the counter drifted.
		return tx.Exec(
			`UPDATE posts SET like_count = CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END WHERE id = ?`,
			postID,
		).Error
	})
	if err == nil && removed {
		cache.InvalidatePost(ctx, postID)
		cache.InvalidateLeaderboard(ctx)
	}
	return removed, err
}

func (r *likeRepository) LikeComment(ctx context.Context, userID, commentID uint) (bool, error) {
	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			`INSERT INTO likes (user_id, comment_id, created_at) VALUES (?, ?, ?)
			 ON CONFLICT (user_id, comment_id) DO NOTHING`,
			userID, commentID, r.now(),
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		inserted = true
		return tx.Exec(`UPDATE comments SET like_count = like_count + 1 WHERE id = ?`, commentID).Error
	})
	if err == nil && inserted {
		cache.InvalidateLeaderboard(ctx)
	}
	return inserted, err
}

func (r *likeRepository) UnlikeComment(ctx context.Context, userID, commentID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(`DELETE FROM likes WHERE user_id = ? AND comment_id = ?`, userID, commentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Exec(
			`UPDATE comments SET like_count = CASE WHEN like_count > 0 THEN like_count - 1 ELSE 0 END WHERE id = ?`,
			commentID,
		).Error
	})
	if err == nil && removed {
		cache.InvalidateLeaderboard(ctx)
	}
	return removed, err
}

func (r *likeRepository) CountPostLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) CountCommentLikes(ctx context.Context, commentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}
