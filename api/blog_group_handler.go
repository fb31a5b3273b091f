package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/madogan/personal-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogGroupHandler struct {
	responder   Responder
	logger      zerolog.Logger
	resolver    *services.GroupResolver
	blogService *services.BlogService
}

func newBlogGroupHandler(resolver *services.GroupResolver, blogService *services.BlogService) blogGroupHandler {
	logger := log.With().Str("handlerName", "blogGroupHandler").Logger()

	return blogGroupHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		resolver:    resolver,
		blogService: blogService,
	}
}

// BlogGroupCollection represents all translation groups
type BlogGroupCollection struct {
	BlogGroups []*models.BlogGroup `json:"blogGroups"`
	Total      int                 `json:"total"`
}

// getAllBlogGroups lists all translation groups
// @Summary List blog groups
// @Description Returns all translation groups, newest first
// @Tags Blog Groups
// @Accept json
// @Produce json
// @Success 200 {object} BlogGroupCollection "List of blog groups"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog groups"
// @Router /blog-groups [get]
func (h blogGroupHandler) getAllBlogGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := h.resolver.Groups()
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog groups", err))
			return
		}

		h.responder.WriteJSON(w, BlogGroupCollection{
			BlogGroups: groups,
			Total:      len(groups),
		})
	}
}

// getBlogGroup retrieves the translation group a slug belongs to
// @Summary Get blog group
// @Description Returns the translation group containing the given slug
// @Tags Blog Groups
// @Accept json
// @Produce json
// @Param slug path string true "Member slug"
// @Success 200 {object} models.BlogGroup "Blog group"
// @Failure 404 {object} ErrorResponse "Not Found - Group not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog group"
// @Router /blog-group/{slug} [get]
func (h blogGroupHandler) getBlogGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		group, err := h.resolver.GroupForSlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "blog group", err))
			return
		}

		if group == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog group"))
			return
		}

		h.responder.WriteJSON(w, group)
	}
}

// groupUpdateRequest keeps the raw bytes per side so that an absent field,
// an explicit null, and a payload object stay distinguishable.
type groupUpdateRequest struct {
	EN json.RawMessage `json:"en"`
	TR json.RawMessage `json:"tr"`
}

var jsonNull = []byte("null")

// decodeSide turns one side of the request into the payload/remove pair the
// service expects: absent means leave untouched, null means remove.
func decodeSide(raw json.RawMessage) (*models.BlogPostPayload, bool, error) {
	if raw == nil {
		return nil, false, nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return nil, true, nil
	}
	var payload models.BlogPostPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false, err
	}
	return &payload, false, nil
}

// updateBlogGroup edits both halves of a translation group in one request
// @Summary Update blog group
// @Description Applies per-locale updates or removals to a translation group; omitted sides are untouched, null removes that side
// @Tags Blog Groups
// @Accept json
// @Produce json
// @Param slug path string true "Primary member slug"
// @Param group body groupUpdateRequest true "Per-locale updates"
// @Success 200 {object} map[string]string "Resulting primary slug"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid group data"
// @Failure 404 {object} ErrorResponse "Not Found - Group not found"
// @Failure 409 {object} ErrorResponse "Conflict - Slug already in use"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog group"
// @Router /admin/blog-group/{slug} [put]
func (h blogGroupHandler) updateBlogGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		var req groupUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog group request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var update services.GroupUpdate
		var err error
		if update.EN, update.RemoveEN, err = decodeSide(req.EN); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("en", "malformed payload"))
			return
		}
		if update.TR, update.RemoveTR, err = decodeSide(req.TR); err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("tr", "malformed payload"))
			return
		}

		primarySlug, err := h.blogService.UpdateGroup(slug, update)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"slug":   primarySlug,
		})
	}
}

// deleteBlogGroup deletes every member of a translation group
// @Summary Delete blog group
// @Description Deletes all members of a translation group, tolerating per-member failures
// @Tags Blog Groups
// @Accept json
// @Produce json
// @Param slug path string true "Primary member slug"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid slug"
// @Failure 404 {object} ErrorResponse "Not Found - Group not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog group"
// @Router /admin/blog-group/{slug} [delete]
func (h blogGroupHandler) deleteBlogGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		if err := h.blogService.DeleteGroup(slug); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog group deleted successfully",
		})
	}
}
