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

type videoHandler struct {
	responder Responder
	logger    zerolog.Logger
	videos    database.VideoRepo
}

func newVideoHandler(videos database.VideoRepo) videoHandler {
	logger := log.With().Str("handlerName", "videoHandler").Logger()

	return videoHandler{
		responder: NewResponder(logger),
		logger:    logger,
		videos:    videos,
	}
}

type videoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

func (h videoHandler) getAllVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videos.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "videos", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, videos)
	}
}

func (h videoHandler) getVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "videoID", "invalid video ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		video, err := h.videos.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "video", err))
			return
		}
		if video == nil {
			h.responder.WriteError(w, errs.NotFound("video"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, video)
	}
}

func (h videoHandler) createVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req videoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode video request body")
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
		if req.VideoURL == nil || strings.TrimSpace(*req.VideoURL) == "" {
			h.responder.WriteError(w, errs.Validation("videoUrl", "videoUrl is required"))
			return
		}

		video := models.YoutubeVideo{
			Title:        *req.Title,
			Description:  *req.Description,
			VideoURL:     *req.VideoURL,
			ThumbnailURL: req.ThumbnailURL,
		}

		if err := h.videos.Add(&video); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "video", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, video)
	}
}

func (h videoHandler) updateVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "videoID", "invalid video ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		video, err := h.videos.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "video", err))
			return
		}
		if video == nil {
			h.responder.WriteError(w, errs.NotFound("video"))
			return
		}

		var req videoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode video request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				h.responder.WriteError(w, errs.Validation("title", "title cannot be empty"))
				return
			}
			video.Title = *req.Title
		}
		if req.Description != nil {
			video.Description = *req.Description
		}
		if req.VideoURL != nil {
			if strings.TrimSpace(*req.VideoURL) == "" {
				h.responder.WriteError(w, errs.Validation("videoUrl", "videoUrl cannot be empty"))
				return
			}
			video.VideoURL = *req.VideoURL
		}
		if req.ThumbnailURL != nil {
			video.ThumbnailURL = req.ThumbnailURL
		}

		if err := h.videos.Update(video); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "video", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, video)
	}
}

func (h videoHandler) deleteVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "videoID", "invalid video ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.videos.Delete(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "video", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NotFound("video"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "video deleted successfully",
		})
	}
}
