package service

import (
	"context"
	"errors"

	"commune/internal/models"
	"commune/internal/observability"
	"commune/internal/repository"

	"gorm.io/gorm"
)

// LikeService drives the like ledger. Every mutation is idempotent: liking
// something you already like (or unliking something you never liked) succeeds
// without touching the counters.
type LikeService struct {
	likeRepo    repository.LikeRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	users       *UserService
}

func NewLikeService(
	likeRepo repository.LikeRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	users *UserService,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		users:       users,
	}
}

func (s *LikeService) LikePost(ctx context.Context, username string, postID uint) (*models.Post, error) {
	user, err := s.users.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	changed, err := s.likeRepo.LikePost(ctx, user.ID, postID)
	if err != nil {
		return nil, err
	}
	observability.LikesTotal.WithLabelValues("post", "like", outcome(changed)).Inc()

	return s.postRepo.GetByID(ctx, postID)
}

func (s *LikeService) UnlikePost(ctx context.Context, username string, postID uint) (*models.Post, error) {
	user, err := s.users.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	changed, err := s.likeRepo.UnlikePost(ctx, user.ID, postID)
	if err != nil {
		return nil, err
	}
	observability.LikesTotal.WithLabelValues("post", "unlike", outcome(changed)).Inc()

	return s.postRepo.GetByID(ctx, postID)
}

func (s *LikeService) LikeComment(ctx context.Context, username string, commentID uint) (*models.Comment, error) {
	user, err := s.users.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, err
	}

	changed, err := s.likeRepo.LikeComment(ctx, user.ID, commentID)
	if err != nil {
		return nil, err
	}
	observability.LikesTotal.WithLabelValues("comment", "like", outcome(changed)).Inc()

	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *LikeService) UnlikeComment(ctx context.Context, username string, commentID uint) (*models.Comment, error) {
	user, err := s.users.Resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", commentID)
		}
		return nil, err
	}

	changed, err := s.likeRepo.UnlikeComment(ctx, user.ID, commentID)
	if err != nil {
		return nil, err
	}
	observability.LikesTotal.WithLabelValues("comment", "unlike", outcome(changed)).Inc()

	return s.commentRepo.GetByID(ctx, commentID)
}

func outcome(changed bool) string {
	if changed {
		return "applied"
	}
	return "noop"
}
