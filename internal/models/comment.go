package models

import "time"

// Comment is a reply to a post or to another comment on the same post.
// ParentID is nil for top-level comments. A parent must belong to the same
// post; comments are never re-parented, so the relation is acyclic by
// construction.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index:idx_comments_post_parent" json:"post_id"`
	ParentID  *uint     `gorm:"index:idx_comments_post_parent" json:"parent_id,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	LikeCount int       `gorm:"not null;default:0" json:"like_count"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentNode is one node of the assembled comment forest: a comment plus
// its direct replies, oldest first. Depth is 0 for roots; consumers may cap
// how deep they render, the data itself is never truncated.
type CommentNode struct {
	Comment
	Depth   int            `json:"depth"`
	Replies []*CommentNode `json:"replies"`
}
