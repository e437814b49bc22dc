package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/database"
	"portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	sessions  *SessionStore
	users     database.UserRepo
}

func newAuthHandler(sessions *SessionStore, users database.UserRepo) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		sessions:  sessions,
		users:     users,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login validates credentials against the stored bcrypt hash and, on
// success, establishes a session holding the user's public id. A failed
// login never creates a session.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Username == "" || req.Password == "" {
			h.responder.WriteError(w, errs.BadRequest("username and password required"))
			return
		}

		user, err := h.users.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}

		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusUnauthorized, "invalid credentials"))
			return
		}

		if err := h.sessions.Create(w, user.PublicID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user.Projection())
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.Destroy(w, r)
		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "logged out successfully",
		})
	}
}

// me returns the current session's user projection.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.users.FindByPublicID(userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NotFound("user"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, user.Projection())
	}
}
