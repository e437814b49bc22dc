package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCRUD(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, created := doJSON(t, client, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":        "Portfolio Site",
		"description":  "This very site",
		"technologies": []string{"Go", "chi"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["id"].(float64)
	require.NotZero(t, id)

	// public list includes the new project
	resp, list := doJSONList(t, client, ts.URL+"/api/projects")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Portfolio Site", list[0]["title"])

	// partial update keeps unsupplied fields
	resp, updated := doJSON(t, client, http.MethodPut, ts.URL+"/api/projects/1", map[string]any{
		"title": "Renamed",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, "This very site", updated["description"])

	resp, _ = doJSON(t, client, http.MethodDelete, ts.URL+"/api/projects/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/projects/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProjectCreateRequiresAdmin(t *testing.T) {
	ts, client, db := newTestEnv(t)

	// anonymous
	resp, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":       "t",
		"description": "d",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// authenticated but not admin
	addViewer(t, db, "viewerpass")
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "viewer", "viewerpass").StatusCode)

	resp, _ = doJSON(t, client, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"title":       "t",
		"description": "d",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProjectValidation(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, body := doJSON(t, client, http.MethodPost, ts.URL+"/api/projects", map[string]any{
		"description": "missing title",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "title", body["field"])
}

func TestProjectBadIDParam(t *testing.T) {
	ts, client, _ := newTestEnv(t)

	resp, _ := doJSON(t, client, http.MethodGet, ts.URL+"/api/projects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjectDetailNotFound(t *testing.T) {
	ts, client, _ := newTestEnv(t)

	resp, _ := doJSON(t, client, http.MethodGet, ts.URL+"/api/projects/42", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
