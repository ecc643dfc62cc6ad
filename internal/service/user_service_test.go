package service

import (
	"context"
	"strings"
	"testing"

	"commune/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_TrimsAndReusesExisting(t *testing.T) {
	t.Parallel()

	svc := NewUserService(knownUsers(&models.User{ID: 1, Username: "alice"}))

	user, err := svc.Resolve(context.Background(), "  alice ")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
}

func TestResolve_CreatesUnknownUsername(t *testing.T) {
	t.Parallel()

	svc := NewUserService(knownUsers(&models.User{ID: 1, Username: "alice"}))

	user, err := svc.Resolve(context.Background(), "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.NotZero(t, user.ID)
}

func TestResolve_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(knownUsers())

	for _, username := range []string{"", "   ", strings.Repeat("a", 151)} {
		_, err := svc.Resolve(context.Background(), username)
		require.Error(t, err)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewUserService(knownUsers())

	_, err := svc.GetUser(context.Background(), 404)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
