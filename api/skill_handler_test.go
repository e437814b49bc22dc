package api

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillCreateAndCategoryFilter(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, _ := doJSON(t, client, http.MethodPost, ts.URL+"/api/skills", map[string]any{
		"name":       "Go",
		"percentage": 80,
		"category":   "backend",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, list := doJSONList(t, client, ts.URL+"/api/skills?category=backend")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var names []string
	for _, s := range list {
		assert.Equal(t, "backend", s["category"])
		names = append(names, s["name"].(string))
	}
	assert.Contains(t, names, "Go")
}

func TestSkillPercentageOutOfRange(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	for _, percentage := range []int{-1, 101} {
		resp, body := doJSON(t, client, http.MethodPost, ts.URL+"/api/skills", map[string]any{
			"name":       "Go",
			"percentage": percentage,
			"category":   "backend",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "percentage", body["field"])
	}
}

func TestSkillUpdateAndDelete(t *testing.T) {
	ts, client, _ := newTestEnv(t)
	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, created := doJSON(t, client, http.MethodPost, ts.URL+"/api/skills", map[string]any{
		"name":       "Go",
		"percentage": 80,
		"category":   "backend",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := int(created["id"].(float64))

	url := ts.URL + "/api/skills/" + strconv.Itoa(id)
	resp, updated := doJSON(t, client, http.MethodPut, url, map[string]any{
		"percentage": 90,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 90, updated["percentage"])
	assert.Equal(t, "Go", updated["name"])

	resp, _ = doJSON(t, client, http.MethodDelete, url, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodDelete, url, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
