package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires the public read endpoints and the auth-guarded admin
// endpoints.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthHandler(startupTime))

		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-post/{slug}", handlers.blogPostHandler.getBlogPost())
		r.Get("/blog-tags", handlers.blogPostHandler.getAllTags())
		r.Get("/blog-groups", handlers.blogGroupHandler.getAllBlogGroups())
		r.Get("/blog-group/{slug}", handlers.blogGroupHandler.getBlogGroup())
		r.Get("/resume", handlers.resumeHandler.getResume())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/logout", handlers.authHandler.logout())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/admin/blog-posts", handlers.blogPostHandler.getAllBlogPostsAdmin())
		r.Post("/admin/blog-post", handlers.blogPostHandler.createBlogPost())
		r.Put("/admin/blog-post/{slug}", handlers.blogPostHandler.updateBlogPost())
		r.Delete("/admin/blog-post/{slug}", handlers.blogPostHandler.deleteBlogPost())

		r.Put("/admin/blog-group/{slug}", handlers.blogGroupHandler.updateBlogGroup())
		r.Delete("/admin/blog-group/{slug}", handlers.blogGroupHandler.deleteBlogGroup())

		r.Patch("/admin/resume", handlers.resumeHandler.updateResume())

		r.Get("/admin/prompts", handlers.promptsHandler.getPrompts())
		r.Put("/admin/prompts", handlers.promptsHandler.updatePrompts())
		r.Get("/admin/prompts/defaults", handlers.promptsHandler.getDefaultPrompts())
		r.Post("/admin/prompts/reset", handlers.promptsHandler.resetPrompts())

		r.Post("/admin/blog-draft", handlers.draftHandler.generateDraft())
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder := NewResponder(log.Logger)
		responder.WriteJSON(w, map[string]any{
			"status":        "ok",
			"uptimeSeconds": int(time.Since(startupTime).Seconds()),
		})
	}
}
