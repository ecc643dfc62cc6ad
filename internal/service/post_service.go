package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"commune/internal/cache"
	"commune/internal/models"
	"commune/internal/repository"

	"gorm.io/gorm"
)

// PostService owns post creation and reads. A fetched post carries its
// assembled comment forest.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	users       *UserService
	maxLen      int
}

type CreatePostInput struct {
	Username string
	Content  string
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

// defaultPostPageSize is the page size the feed client requests.
const defaultPostPageSize = 20

func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	users *UserService,
	maxLen int,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		users:       users,
		maxLen:      maxLen,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
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

	post := &models.Post{
		UserID:  user.ID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload to carry the author on the response.
	return s.postRepo.GetByID(ctx, post.ID)
}

// ListPosts returns posts newest first. Only the default first page goes
// through the cache, the key does not encode limit or offset; every write to
// posts invalidates it.
func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	if in.Limit <= 0 {
		in.Limit = defaultPostPageSize
	}

	var posts []*models.Post
	if in.Offset == 0 && in.Limit == defaultPostPageSize {
		err := cache.Aside(ctx, cache.PostsListKey(), &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		posts, err = s.postRepo.List(ctx, in.Limit, in.Offset)
		if err != nil {
			return nil, err
		}
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	return posts, nil
}

// GetPost returns the post with its nested comment forest attached.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = BuildCommentForest(comments)

	return post, nil
}
