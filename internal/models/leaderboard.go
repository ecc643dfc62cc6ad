package models

// LeaderboardEntry is one row of the karma leaderboard. It is always
// computed from the like ledger for a trailing window, never persisted.
type LeaderboardEntry struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Karma        int    `json:"karma"`
	PostKarma    int    `json:"post_karma"`
	CommentKarma int    `json:"comment_karma"`
}
