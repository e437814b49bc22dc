package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	projectHandler   projectHandler
	blogPostHandler  blogPostHandler
	videoHandler     videoHandler
	skillHandler     skillHandler
	contactHandler   contactHandler
	dashboardHandler dashboardHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}
