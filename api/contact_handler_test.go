package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMissingEmailPersistsNothing(t *testing.T) {
	ts, client, db := newTestEnv(t)

	resp, body := doJSON(t, client, http.MethodPost, ts.URL+"/api/contacts", map[string]any{
		"name":    "Ada",
		"subject": "Hello",
		"message": "Nice site",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email", body["field"])

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.UnreadContactCount)
}

func TestContactLifecycle(t *testing.T) {
	ts, client, db := newTestEnv(t)

	// anonymous submission; the client cannot pre-mark it read
	resp, created := doJSON(t, client, http.MethodPost, ts.URL+"/api/contacts", map[string]any{
		"name":    "Ada",
		"email":   "ada@example.com",
		"subject": "Hello",
		"message": "Nice site",
		"isRead":  true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, false, created["isRead"])

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.UnreadContactCount)

	// triage requires an admin session
	resp, _ = doJSON(t, client, http.MethodGet, ts.URL+"/api/contacts", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	require.Equal(t, http.StatusOK, login(t, client, ts.URL, "admin", testAdminPassword).StatusCode)

	resp, list := doJSONList(t, client, ts.URL+"/api/contacts")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0]["name"])

	resp, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/contacts/1/read", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stats, err = db.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.UnreadContactCount)

	resp, _ = doJSON(t, client, http.MethodDelete, ts.URL+"/api/contacts/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, http.MethodDelete, ts.URL+"/api/contacts/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
