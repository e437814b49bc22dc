package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an error to a status code and a JSON body with a
// human-readable message. Unexpected errors are logged with their cause and
// surfaced as a generic 500; internals never reach the client.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, map[string]any{
			"message": "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Err(apiErr.Cause).Msg(apiErr.Error())
	}

	response := map[string]any{
		"message": apiErr.Error(),
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	r.WriteJSON(w, apiErr.StatusCode, response)
}
