package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const sessionCookieName = "portfolio_session"

// SessionStore holds login sessions server-side: the cookie carries only an
// opaque random token, the token maps to the user's public id in a
// TTL-expiring cache. Expiry is fixed per session, not activity-based.
type SessionStore struct {
	tokens *cache.Cache
	ttl    time.Duration
	secure bool
}

func NewSessionStore(ttl time.Duration, secure bool) *SessionStore {
	return &SessionStore{
		tokens: cache.New(ttl, ttl),
		ttl:    ttl,
		secure: secure,
	}
}

// Create issues a new session for userID and sets the cookie on w.
func (s *SessionStore) Create(w http.ResponseWriter, userID uint) error {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	s.tokens.Set(token, userID, cache.DefaultExpiration)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID resolves the request's session cookie to a user id.
func (s *SessionStore) UserID(r *http.Request) (uint, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	value, found := s.tokens.Get(cookie.Value)
	if !found {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// Destroy drops the server-side session and expires the cookie.
func (s *SessionStore) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.tokens.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
