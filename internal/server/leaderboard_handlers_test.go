package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTopUsers_Empty(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, entries := doJSONList(t, app, "/api/leaderboard/top_users")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, entries, 0)
}

func TestGetTopUsers_WeightsPostOverComment(t *testing.T) {
	app, _ := setupTestServer(t)

	postID := createPost(t, app, "alice", "post by alice")
	comment := createComment(t, app, "bob", postID, "comment by bob", nil)
	commentID := int(comment["id"].(float64))

	// carol likes alice's post (worth 5), alice likes bob's comment (worth 1).
	resp, _ := doJSON(t, app, http.MethodPost,
		postPath(postID)+"/like", map[string]any{"username": "carol"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost,
		commentPath(commentID)+"/like", map[string]any{"username": "alice"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, entries := doJSONList(t, app, "/api/leaderboard/top_users")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, entries, 2)

	assert.Equal(t, "alice", entries[0]["username"])
	assert.Equal(t, float64(5), entries[0]["karma"])
	assert.Equal(t, "bob", entries[1]["username"])
	assert.Equal(t, float64(1), entries[1]["karma"])
}

func TestGetTopUsers_LimitParam(t *testing.T) {
	app, _ := setupTestServer(t)

	// Three authors each receive one post like.
	for _, author := range []string{"alice", "bob", "carol"} {
		postID := createPost(t, app, author, "post by "+author)
		resp, _ := doJSON(t, app, http.MethodPost,
			postPath(postID)+"/like", map[string]any{"username": "dave"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, entries := doJSONList(t, app, "/api/leaderboard/top_users?limit=2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, entries, 2)
}

func TestGetTopUsers_InvalidWindow(t *testing.T) {
	app, _ := setupTestServer(t)

	for _, q := range []string{"?window=banana", "?window=-2h"} {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/leaderboard/top_users"+q, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestGetTopUsers_UnlikeRemovesKarma(t *testing.T) {
	app, _ := setupTestServer(t)

	postID := createPost(t, app, "alice", "post")
	resp, _ := doJSON(t, app, http.MethodPost,
		postPath(postID)+"/like", map[string]any{"username": "bob"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodPost,
		postPath(postID)+"/unlike", map[string]any{"username": "bob"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, entries := doJSONList(t, app, "/api/leaderboard/top_users")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, entries, 0)
}
