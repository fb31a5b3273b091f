package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/madogan/personal-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       services.PostStore
	blogService *services.BlogService
}

func newBlogPostHandler(store services.PostStore, blogService *services.BlogService) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		blogService: blogService,
	}
}

// BlogPostCollection represents multiple blog posts
type BlogPostCollection struct {
	BlogPosts []*models.BlogPost `json:"blogPosts"`
	Total     int                `json:"total"`
}

// requestLocale resolves the visitor's preferred locale from the explicit
// ?locale query parameter, falling back to Accept-Language detection.
func requestLocale(r *http.Request) models.Locale {
	if locale := models.Locale(r.URL.Query().Get("locale")); locale.Valid() {
		return locale
	}
	return services.DetectLocale(r.Header.Get("Accept-Language"))
}

// getAllBlogPosts retrieves the published posts, one per translation pair,
// preferring the visitor's locale
// @Summary List blog posts
// @Description Returns all blog posts with one representative per translation pair, preferring the request locale
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param locale query string false "Preferred locale (en or tr)"
// @Success 200 {object} BlogPostCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /blog-posts [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.store.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog posts", err))
			return
		}

		prioritized := services.PrioritizeByLocale(posts, requestLocale(r))

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts: prioritized,
			Total:     len(prioritized),
		})
	}
}

// getAllBlogPostsAdmin retrieves every post file without locale collapsing
// @Summary List all blog posts
// @Description Returns every stored blog post regardless of locale or pairing
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Success 200 {object} BlogPostCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /admin/blog-posts [get]
func (h blogPostHandler) getAllBlogPostsAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.store.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogPostCollection{
			BlogPosts: posts,
			Total:     len(posts),
		})
	}
}

// getBlogPost retrieves a specific blog post by slug
// @Summary Get blog post
// @Description Retrieves a single blog post by slug
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} models.BlogPost "Blog post"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog post"
// @Router /blog-post/{slug} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.store.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog post", err))
			return
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getAllTags lists every distinct tag across all posts
// @Summary List blog tags
// @Description Returns the sorted set of distinct tags across all blog posts
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Success 200 {object} map[string][]string "Tag list"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching tags"
// @Router /blog-tags [get]
func (h blogPostHandler) getAllTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.store.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]string{
			"tags": services.AllTags(posts),
		})
	}
}

// createBlogPost creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post file, rejecting duplicate slugs
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param blogPost body models.BlogPostPayload true "Blog post data"
// @Success 201 {object} map[string]string "Created slug"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /admin/blog-post [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload models.BlogPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		slug, err := h.blogService.CreatePost(&payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"slug":   slug,
		})
	}
}

// updateBlogPost updates an existing blog post, renaming its file when the
// slug changed
// @Summary Update blog post
// @Description Updates an existing blog post; a changed slug moves the post to a new file
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param slug path string true "Current blog post slug"
// @Param blogPost body models.BlogPostPayload true "Updated blog post data"
// @Success 200 {object} map[string]string "Resulting slug"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 409 {object} ErrorResponse "Conflict - New slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog post"
// @Router /admin/blog-post/{slug} [put]
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		var payload models.BlogPostPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		newSlug, err := h.blogService.UpdatePost(slug, &payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"slug":   newSlug,
		})
	}
}

// deleteBlogPost deletes a blog post by slug
// @Summary Delete blog post
// @Description Deletes a blog post file; deleting an absent post succeeds
// @Tags Blog Posts
// @Accept json
// @Produce json
// @Param slug path string true "Blog post slug"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid slug"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog post"
// @Router /admin/blog-post/{slug} [delete]
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.blogService.DeletePost(slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
