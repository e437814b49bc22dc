package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsRequiresAdmin(t *testing.T) {
	ts, client, db := newTestEnv(t)

	resp, _ := doJSON(t, client, http.MethodGet, ts.URL+"/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	addViewer(t, db, "viewerpass")
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "viewer", "viewerpass").StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/dashboard/stats", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDashboardStatsCounts(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":       "p",
		"description": "d",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/youtube-videos", map[string]any{
		"title":       "v",
		"description": "d",
		"videoUrl":    "https://youtu.be/x",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, stats := doJSON(t, client, http.MethodGet, ts.URL+"/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, stats["projectCount"])
	assert.EqualValues(t, 0, stats["blogPostCount"])
	assert.EqualValues(t, 1, stats["videoCount"])
	assert.EqualValues(t, 0, stats["unreadContactCount"])
}
