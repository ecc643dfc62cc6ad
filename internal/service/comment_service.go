package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commune/internal/models"
	"commune/internal/repository"

	"gorm.io/gorm"
)

// CommentService owns comment creation and comment-forest reads.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	users       *UserService
	maxLen      int
}

type CreateCommentInput struct {
	Username string
	PostID   uint
	Content  string
	ParentID *uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	users *UserService,
	maxLen int,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		users:       users,
		maxLen:      maxLen,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	user, err := s.users.Resolve(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len([]rune(content)) > s.maxLen {
		return nil, models.NewValidationError(fmt.Sprintf("Content too long (max %d characters)", s.maxLen))
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NewNotFoundError("Comment", *in.ParentID)
			}
			return nil, err
		}
		// Cross-post parenting is forbidden; the parent relation stays
		// inside one post's comment set.
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		ParentID: in.ParentID,
		UserID:   user.ID,
		Content:  content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ForestForPost returns the post's comment forest, roots oldest first.
func (s *CommentService) ForestForPost(ctx context.Context, postID uint) ([]*models.CommentNode, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildCommentForest(comments), nil
}
