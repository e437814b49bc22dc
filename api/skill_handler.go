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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    database.SkillRepo
}

func newSkillHandler(skills database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

type skillRequest struct {
	Name       *string `json:"name"`
	Percentage *int    `json:"percentage"`
	Category   *string `json:"category"`
}

// getAllSkills lists skills, optionally filtered by the category query
// parameter.
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			skills []*models.Skill
			err    error
		)

		if category := r.URL.Query().Get("category"); category != "" {
			skills, err = h.skills.FindByCategory(category)
		} else {
			skills, err = h.skills.FindAll()
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skills", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, skills)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
			h.responder.WriteError(w, errs.Validation("name", "name is required"))
			return
		}
		if req.Percentage == nil {
			h.responder.WriteError(w, errs.Validation("percentage", "percentage is required"))
			return
		}
		if *req.Percentage < 0 || *req.Percentage > 100 {
			h.responder.WriteError(w, errs.Validation("percentage", "percentage must be between 0 and 100"))
			return
		}
		if req.Category == nil || strings.TrimSpace(*req.Category) == "" {
			h.responder.WriteError(w, errs.Validation("category", "category is required"))
			return
		}

		skill := models.Skill{
			Name:       *req.Name,
			Percentage: *req.Percentage,
			Category:   *req.Category,
		}

		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "skillID", "invalid skill ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skills.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NotFound("skill"))
			return
		}

		var req skillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Name != nil {
			if strings.TrimSpace(*req.Name) == "" {
				h.responder.WriteError(w, errs.Validation("name", "name cannot be empty"))
				return
			}
			skill.Name = *req.Name
		}
		if req.Percentage != nil {
			if *req.Percentage < 0 || *req.Percentage > 100 {
				h.responder.WriteError(w, errs.Validation("percentage", "percentage must be between 0 and 100"))
				return
			}
			skill.Percentage = *req.Percentage
		}
		if req.Category != nil {
			skill.Category = *req.Category
		}

		if err := h.skills.Update(skill); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "skillID", "invalid skill ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.skills.Delete(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "skill", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NotFound("skill"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "skill deleted successfully",
		})
	}
}
