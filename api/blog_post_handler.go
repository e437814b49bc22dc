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

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogPosts database.BlogPostRepo
}

func newBlogPostHandler(blogPosts database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogPosts: blogPosts,
	}
}

type blogPostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Excerpt  *string `json:"excerpt"`
	ImageURL *string `json:"imageUrl"`
	Category *string `json:"category"`
}

func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPosts.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, posts)
	}
}

func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "blogPostID", "invalid blog post ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPosts.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, post)
	}
}

func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req blogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
			h.responder.WriteError(w, errs.Validation("title", "title is required"))
			return
		}
		if req.Content == nil || strings.TrimSpace(*req.Content) == "" {
			h.responder.WriteError(w, errs.Validation("content", "content is required"))
			return
		}
		if req.Excerpt == nil || strings.TrimSpace(*req.Excerpt) == "" {
			h.responder.WriteError(w, errs.Validation("excerpt", "excerpt is required"))
			return
		}
		if req.Category == nil || strings.TrimSpace(*req.Category) == "" {
			h.responder.WriteError(w, errs.Validation("category", "category is required"))
			return
		}

		post := models.BlogPost{
			Title:    *req.Title,
			Content:  *req.Content,
			Excerpt:  *req.Excerpt,
			ImageURL: req.ImageURL,
			Category: *req.Category,
		}

		if err := h.blogPosts.Add(&post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, post)
	}
}

// updateBlogPost merges the supplied fields; UpdatedAt is refreshed by the
// repository on every successful update, even when nothing else changed.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "blogPostID", "invalid blog post ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.blogPosts.FindByPublicID(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NotFound("blog post"))
			return
		}

		var req blogPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				h.responder.WriteError(w, errs.Validation("title", "title cannot be empty"))
				return
			}
			post.Title = *req.Title
		}
		if req.Content != nil {
			post.Content = *req.Content
		}
		if req.Excerpt != nil {
			post.Excerpt = *req.Excerpt
		}
		if req.ImageURL != nil {
			post.ImageURL = req.ImageURL
		}
		if req.Category != nil {
			post.Category = *req.Category
		}

		if err := h.blogPosts.Update(post); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, post)
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseIDParam(r, "blogPostID", "invalid blog post ID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.blogPosts.Delete(id)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog post", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "blog post deleted successfully",
		})
	}
}
