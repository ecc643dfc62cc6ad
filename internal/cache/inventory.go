package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	postKeyPrefix  = "post:%d"
	postsListKey   = "posts:list"
	leaderboardKey = "leaderboard:top"
)

const (
	PostTTL        = 5 * time.Minute
	ListTTL        = 30 * time.Second
	LeaderboardTTL = 15 * time.Second
)

func PostKey(postID uint) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

func PostsListKey() string {
	return postsListKey
}

func LeaderboardKey() string {
	return leaderboardKey
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, postsListKey)
}

func InvalidateLeaderboard(ctx context.Context) {
	Invalidate(ctx, leaderboardKey)
}
