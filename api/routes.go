package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public tier, the auth endpoints and the
// admin-only tier under /api.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Auth endpoints
		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
		r.Group(func(r chi.Router) {
			r.Use(auth.requireAuth)
			r.Get("/auth/me", handlers.authHandler.me())
		})

		// Public tier: read-only content plus contact submission
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-posts/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Get("/youtube-videos", handlers.videoHandler.getAllVideos())
		r.Get("/youtube-videos/{videoID}", handlers.videoHandler.getVideo())
		r.Get("/skills", handlers.skillHandler.getAllSkills())
		r.Post("/contacts", handlers.contactHandler.createContact())

		// Admin tier: content management, contact triage, dashboard
		r.Group(func(r chi.Router) {
			r.Use(auth.requireAdmin)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/blog-posts", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog-posts/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog-posts/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/youtube-videos", handlers.videoHandler.createVideo())
			r.Put("/youtube-videos/{videoID}", handlers.videoHandler.updateVideo())
			r.Delete("/youtube-videos/{videoID}", handlers.videoHandler.deleteVideo())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Get("/contacts", handlers.contactHandler.getAllContacts())
			r.Put("/contacts/{contactID}/read", handlers.contactHandler.markContactRead())
			r.Delete("/contacts/{contactID}", handlers.contactHandler.deleteContact())

			r.Get("/dashboard/stats", handlers.dashboardHandler.getStats())
		})
	})
}
