package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"portfolio-backend/database"
	"portfolio-backend/errs"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(db database.Database, sessions *SessionStore) *routeHandlers {
	return &routeHandlers{
		authHandler:      newAuthHandler(sessions, db.Users()),
		projectHandler:   newProjectHandler(db.Projects()),
		blogPostHandler:  newBlogPostHandler(db.BlogPosts()),
		videoHandler:     newVideoHandler(db.Videos()),
		skillHandler:     newSkillHandler(db.Skills()),
		contactHandler:   newContactHandler(db.Contacts()),
		dashboardHandler: newDashboardHandler(db),
	}
}

// parseIDParam reads a positive-integer path parameter, yielding a 400 with
// the given message on anything else.
func parseIDParam(r *http.Request, param, badIDMessage string) (uint, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.BadRequest(badIDMessage)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.BadRequest(badIDMessage)
	}
	return uint(id), nil
}
