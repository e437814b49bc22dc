package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newDashboardHandler(db database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// getStats aggregates the four dashboard counts. The counts are independent
// queries; a result may not correspond to a single instant under concurrent
// writes.
func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.db.Stats()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("aggregate", "dashboard stats", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, stats)
	}
}
