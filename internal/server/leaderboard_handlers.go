package server

import (
	"time"

	"commune/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTopUsers handles GET /api/leaderboard/top_users.
// Optional query params: limit (count) and window (Go duration, e.g. "12h").
func (s *Server) GetTopUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("limit must be positive"))
	}

	var window time.Duration
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid window duration"))
		}
		window = parsed
	}

	entries, err := s.leaderboardService.TopUsers(ctx, limit, window)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(entries)
}
