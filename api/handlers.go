package api

import (
	"github.com/madogan/personal-site-backend/database"
	"github.com/madogan/personal-site-backend/services"
	"github.com/tmc/langchaingo/llms"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, llm llms.Model, auth authConfig) *routeHandlers {
	store := database.BlogPostRepo()
	blogService := services.NewBlogService(store)
	resolver := services.NewGroupResolver(store)
	resumeService := services.NewResumeService(database.ResumeRepo())
	draftService := services.NewDraftService(llm, database.PromptsRepo())

	return &routeHandlers{
		authHandler:      newAuthHandler(auth.adminEmail, auth.adminPassword, auth.sessionSecret, auth.secureCookies),
		blogPostHandler:  newBlogPostHandler(store, blogService),
		blogGroupHandler: newBlogGroupHandler(resolver, blogService),
		resumeHandler:    newResumeHandler(resumeService),
		promptsHandler:   newPromptsHandler(database.PromptsRepo()),
		draftHandler:     newDraftHandler(draftService),
	}
}

// authConfig bundles the admin account settings read from config.
type authConfig struct {
	adminEmail    string
	adminPassword string
	sessionSecret string
	secureCookies bool
}
