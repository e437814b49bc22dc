package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"portfolio-backend/database"
	"portfolio-backend/errs"
	"portfolio-backend/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contacts  database.ContactRepo
}

func newContactHandler(contacts database.ContactRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contacts:  contacts,
	}
}

type contactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

// createContact is the only anonymous write in the API. IsRead is forced
// false whatever the client sent.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.Validation("name", "name is required"))
			return
		}
		if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
			h.responder.WriteError(w, errs.Validation("email", "email is required"))
			return
		}
		if !strings.Contains(*req.Email, "@") {
			h.responder.WriteError(w, errs.Validation("email", "invalid email address"))
			return
		}
		if req.Subject == nil || strings.TrimSpace(*req.Subject) == "" {
			h.responder.WriteError(w, errs.Validation("subject", "subject is required"))
			return
		}
		if req.Message == nil || strings.TrimSpace(*req.Message) == "" {
			h.responder.WriteError(w, errs.Validation("message", "message is required"))
			return
		}

		contact := models.Contact{
			Name:    *req.Name,
			Email:   *req.Email,
			Subject: *req.Subject,
			Message: *req.Message,
		}

		if err := h.contacts.Add(&contact); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "contact", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, contact)
	}
}

func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contacts.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, contacts)
	}
}

func (h contactHandler) markContactRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "contactID", "invalid contact ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		marked, err := h.contacts.MarkRead(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "contact", err))
			return
		}
		if !marked {
			h.responder.WriteError(w, errs.NotFound("contact"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "contact marked as read",
		})
	}
}

func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "contactID", "invalid contact ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.contacts.Delete(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "contact", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NotFound("contact"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "contact deleted successfully",
		})
	}
}
