package service

import (
	"context"
	"time"

	"commune/internal/models"

	"gorm.io/gorm"
)

type stubUserRepo struct {
	getByIDFn               func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn         func(ctx context.Context, username string) (*models.User, error)
	getOrCreateByUsernameFn func(ctx context.Context, username string) (*models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) GetOrCreateByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getOrCreateByUsernameFn(ctx, username)
}

type stubPostRepo struct {
	createFn  func(ctx context.Context, post *models.Post) error
	getByIDFn func(ctx context.Context, id uint) (*models.Post, error)
	listFn    func(ctx context.Context, limit, offset int) ([]*models.Post, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, id uint) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID uint) ([]*models.Comment, error)
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

// fakeLikeLedger is a map-backed ledger with the same idempotence rules as
// the SQL one.
type fakeLikeLedger struct {
	postLikes    map[[2]uint]bool
	commentLikes map[[2]uint]bool
}

func newFakeLikeLedger() *fakeLikeLedger {
	return &fakeLikeLedger{
		postLikes:    map[[2]uint]bool{},
		commentLikes: map[[2]uint]bool{},
	}
}

func (f *fakeLikeLedger) LikePost(_ context.Context, userID, postID uint) (bool, error) {
	key := [2]uint{userID, postID}
	if f.postLikes[key] {
		return false, nil
	}
	f.postLikes[key] = true
	return true, nil
}

func (f *fakeLikeLedger) UnlikePost(_ context.Context, userID, postID uint) (bool, error) {
	key := [2]uint{userID, postID}
	if !f.postLikes[key] {
		return false, nil
	}
	delete(f.postLikes, key)
	return true, nil
}

func (f *fakeLikeLedger) LikeComment(_ context.Context, userID, commentID uint) (bool, error) {
	key := [2]uint{userID, commentID}
	if f.commentLikes[key] {
		return false, nil
	}
	f.commentLikes[key] = true
	return true, nil
}

func (f *fakeLikeLedger) UnlikeComment(_ context.Context, userID, commentID uint) (bool, error) {
	key := [2]uint{userID, commentID}
	if !f.commentLikes[key] {
		return false, nil
	}
	delete(f.commentLikes, key)
	return true, nil
}

func (f *fakeLikeLedger) CountPostLikes(_ context.Context, postID uint) (int64, error) {
	var n int64
	for key := range f.postLikes {
		if key[1] == postID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikeLedger) CountCommentLikes(_ context.Context, commentID uint) (int64, error) {
	var n int64
	for key := range f.commentLikes {
		if key[1] == commentID {
			n++
		}
	}
	return n, nil
}

type stubLeaderboardRepo struct {
	aggregateFn func(ctx context.Context, since time.Time, postWeight, commentWeight int) ([]*models.LeaderboardEntry, error)
}

func (s *stubLeaderboardRepo) AggregateKarma(ctx context.Context, since time.Time, postWeight, commentWeight int) ([]*models.LeaderboardEntry, error) {
	return s.aggregateFn(ctx, since, postWeight, commentWeight)
}

func knownUsers(users ...*models.User) *stubUserRepo {
	byName := map[string]*models.User{}
	byID := map[uint]*models.User{}
	for _, u := range users {
		byName[u.Username] = u
		byID[u.ID] = u
	}
	return &stubUserRepo{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			if u, ok := byID[id]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			if u, ok := byName[username]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		getOrCreateByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			if u, ok := byName[username]; ok {
				return u, nil
			}
			u := &models.User{ID: uint(len(byID) + 1), Username: username}
			byName[username] = u
			byID[u.ID] = u
			return u, nil
		},
	}
}
