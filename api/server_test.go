package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/database"
	"portfolio-backend/models"
)

const testAdminPassword = "admin123"

// newTestEnv spins up the real router on the in-memory store, bootstrapped
// the same way main does, with a cookie-carrying client.
func newTestEnv(t *testing.T) (*httptest.Server, *http.Client, database.Database) {
	t.Helper()

	db := database.NewMemory()
	require.NoError(t, database.Bootstrap(db, testAdminPassword))

	router := newRouter(db, withConfig(map[string]string{}))
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	return ts, client, db
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	// some endpoints return arrays; callers that care decode themselves
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func doJSONList(t *testing.T, client *http.Client, url string) (*http.Response, []map[string]any) {
	t.Helper()

	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) *http.Response {
	t.Helper()
	resp, _ := doJSON(t, client, http.MethodPost, baseURL+"/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	return resp
}

// addViewer creates a non-admin account directly in the store.
func addViewer(t *testing.T, db database.Database, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Users().Add(&models.User{
		Username: "viewer",
		Password: string(hash),
		IsAdmin:  false,
	}))
}
