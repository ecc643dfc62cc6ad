package server

import (
	"commune/internal/models"
	"commune/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username string `json:"username"`
		Post     uint   `json:"post"`
		Content  string `json:"content"`
		Parent   *uint  `json:"parent"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Post == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post is required"))
	}

	comment, err := s.commentService.CreateComment(ctx, service.CreateCommentInput{
		Username: req.Username,
		PostID:   req.Post,
		Content:  req.Content,
		ParentID: req.Parent,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments handles GET /api/comments?post_id=N, returning the post's
// comment forest.
func (s *Server) GetComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID := c.QueryInt("post_id", 0)
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("post_id query parameter is required"))
	}

	forest, err := s.commentService.ForestForPost(ctx, uint(postID))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(forest)
}

// LikeComment handles POST /api/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.likeService.LikeComment(ctx, req.Username, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// UnlikeComment handles POST /api/comments/:id/unlike
func (s *Server) UnlikeComment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.likeService.UnlikeComment(ctx, req.Username, id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}
