package service

import (
	"context"
	"sort"
	"time"

	"commune/internal/cache"
	"commune/internal/models"
	"commune/internal/observability"
	"commune/internal/repository"
)

// LeaderboardService computes the sliding-window karma ranking. The window is
// inclusive at its lower bound: a like created exactly window-ago still counts.
type LeaderboardService struct {
	repo          repository.LeaderboardRepository
	postWeight    int
	commentWeight int
	window        time.Duration
	limit         int
	now           func() time.Time
}

func NewLeaderboardService(
	repo repository.LeaderboardRepository,
	postWeight, commentWeight int,
	window time.Duration,
	limit int,
) *LeaderboardService {
	return &LeaderboardService{
		repo:          repo,
		postWeight:    postWeight,
		commentWeight: commentWeight,
		window:        window,
		limit:         limit,
		now:           time.Now,
	}
}

// TopUsers returns up to n users ranked by karma earned inside the window.
// n <= 0 and window <= 0 fall back to the configured defaults; only the
// default query is served from cache.
func (s *LeaderboardService) TopUsers(ctx context.Context, n int, window time.Duration) ([]*models.LeaderboardEntry, error) {
	isDefault := (n <= 0 || n == s.limit) && (window <= 0 || window == s.window)
	if n <= 0 {
		n = s.limit
	}
	if window <= 0 {
		window = s.window
	}

	if !isDefault {
		return s.compute(ctx, n, window)
	}

	var entries []*models.LeaderboardEntry
	err := cache.Aside(ctx, cache.LeaderboardKey(), &entries, cache.LeaderboardTTL, func() error {
		fresh, err := s.compute(ctx, n, window)
		if err != nil {
			return err
		}
		entries = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	return entries, nil
}

func (s *LeaderboardService) compute(ctx context.Context, n int, window time.Duration) ([]*models.LeaderboardEntry, error) {
	start := time.Now()
	since := s.now().UTC().Add(-window)

	entries, err := s.repo.AggregateKarma(ctx, since, s.postWeight, s.commentWeight)
	if err != nil {
		return nil, err
	}
	observability.LeaderboardComputeSeconds.Observe(time.Since(start).Seconds())

	// Ties break on user ID so the ranking is stable across calls.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Karma != entries[j].Karma {
			return entries[i].Karma > entries[j].Karma
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	if entries == nil {
		entries = []*models.LeaderboardEntry{}
	}
	return entries, nil
}
