package models

import "time"

// Like records that a user liked a post or a comment; exactly one of
// PostID/CommentID is set. The (user, post) and (user, comment) pairs are
// unique, so the table can never hold more than one active like per actor
// and target. This table is the authoritative ledger from which counters
// and karma are derived.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment" json:"user_id"`
	PostID    *uint     `gorm:"uniqueIndex:idx_likes_user_post" json:"post_id,omitempty"`
	CommentID *uint     `gorm:"uniqueIndex:idx_likes_user_comment" json:"comment_id,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
