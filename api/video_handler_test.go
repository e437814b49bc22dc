package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoCreateAndDetail(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, created := doJSON(t, client, http.MethodPost, ts.URL+"/api/youtube-videos", map[string]any{
		"title":       "Build log",
		"description": "Walkthrough",
		"videoUrl":    "https://youtu.be/abc",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	// thumbnail is optional and omitted when absent
	_, hasThumbnail := created["thumbnailUrl"]
	assert.False(t, hasThumbnail)

	resp, detail := doJSON(t, client, http.MethodGet, ts.URL+"/api/youtube-videos/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://youtu.be/abc", detail["videoUrl"])
}

func TestVideoMissingURL(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, body := doJSON(t, client, http.MethodPost, ts.URL+"/api/youtube-videos", map[string]any{
		"title":       "t",
		"description": "d",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "videoUrl", body["field"])
}
