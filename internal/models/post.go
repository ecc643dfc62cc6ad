package models

import "time"

// Post is a top-level entry in the community feed.
//
// LikeCount and CommentCount are denormalized counters maintained inside the
// same transaction as the ledger/comment write that changes them. The likes
// table stays the source of truth; the counters are a cache that can be
// recomputed from it.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"author"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Comments carries the assembled comment forest on detail reads.
	// Not persisted.
	Comments []*CommentNode `gorm:"-" json:"comments,omitempty"`
}
