// Package models contains data structures for the application's domain models.
package models

import "time"

// User is a feed participant. Users are created on first reference by
// username and never deleted. Usernames are unique at the storage level;
// the system performs no identity verification beyond that, so two people
// choosing the same display name share one identity.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null;size:150" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
