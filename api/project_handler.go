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

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  database.ProjectRepo
}

func newProjectHandler(projects database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// projectRequest carries a create or partial-update body. Pointer fields
// distinguish "absent" from "set to empty".
type projectRequest struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	ImageURL     *string  `json:"imageUrl"`
	ProjectURL   *string  `json:"projectUrl"`
	Technologies []string `json:"technologies"`
}

func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "projectID", "invalid project ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			h.responder.WriteError(w, errs.Validation("title", "title is required"))
			return
		}
		if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
			h.responder.WriteError(w, errs.Validation("description", "description is required"))
			return
		}

		project := models.Project{
			Title:        *req.Title,
			Description:  *req.Description,
			ImageURL:     req.ImageURL,
			ProjectURL:   req.ProjectURL,
			Technologies: req.Technologies,
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "projectID", "invalid project ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projects.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NotFound("project"))
			return
		}

		var req projectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		// merge supplied fields only
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				h.responder.WriteError(w, errs.Validation("title", "title cannot be empty"))
				return
			}
			project.Title = *req.Title
		}
		if req.Description != nil {
			project.Description = *req.Description
		}
		if req.ImageURL != nil {
			project.ImageURL = req.ImageURL
		}
		if req.ProjectURL != nil {
			project.ProjectURL = req.ProjectURL
		}
		if req.Technologies != nil {
			project.Technologies = req.Technologies
		}

		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "projectID", "invalid project ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.projects.Delete(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "project deleted successfully",
		})
	}
}
