package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"username": "alice",
		"content":  "hello world",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "hello world", body["content"])
	assert.Equal(t, float64(0), body["like_count"])

	author, ok := body["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", author["username"])
}

func TestCreatePost_Validation(t *testing.T) {
	app, _ := setupTestServer(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing username", map[string]any{"content": "hi"}},
		{"blank content", map[string]any{"username": "alice", "content": "   "}},
		{"content too long", map[string]any{"username": "alice", "content": strings.Repeat("x", 501)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, app, http.MethodPost, "/api/posts", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetPosts_NewestFirst(t *testing.T) {
	app, _ := setupTestServer(t)

	for _, content := range []string{"first", "second", "third"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
			"username": "alice",
			"content":  content,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, posts := doJSONList(t, app, "/api/posts")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0]["content"])
	assert.Equal(t, "first", posts[2]["content"])
}

func TestGetPost_NotFound(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/posts/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func TestLikePost_IsIdempotent(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, post := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"username": "alice",
		"content":  "like me",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := int(post["id"].(float64))

	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, app, http.MethodPost,
			postPath(postID)+"/like", map[string]any{"username": "bob"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(1), body["like_count"])
	}
}

func TestUnlikePost_WithoutLikeIsNoop(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, post := doJSON(t, app, http.MethodPost, "/api/posts", map[string]any{
		"username": "alice",
		"content":  "nothing to undo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID := int(post["id"].(float64))

	resp, body := doJSON(t, app, http.MethodPost,
		postPath(postID)+"/unlike", map[string]any{"username": "bob"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["like_count"])
}

func TestLikePost_NotFound(t *testing.T) {
	app, _ := setupTestServer(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/999/like",
		map[string]any{"username": "bob"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
