package api

import (
	"encoding/json"
	"net/http"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type draftHandler struct {
	responder    Responder
	logger       zerolog.Logger
	draftService *services.DraftService
}

func newDraftHandler(draftService *services.DraftService) draftHandler {
	logger := log.With().Str("handlerName", "draftHandler").Logger()

	return draftHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		draftService: draftService,
	}
}

// generateDraft produces blog drafts from a topic via the language model
// @Summary Generate blog draft
// @Description Generates a draft for one locale or a bilingual pair from a topic, optionally using the existing other-locale post as context
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body services.DraftRequest true "Draft request"
// @Success 200 {object} services.DraftResult "Generated drafts"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid draft request"
// @Failure 429 {object} ErrorResponse "Too Many Requests - Model rate limit"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Model failure or unusable output"
// @Failure 504 {object} ErrorResponse "Gateway Timeout - Model timed out"
// @Router /admin/blog-draft [post]
func (h draftHandler) generateDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req services.DraftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode draft request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		result, err := h.draftService.Generate(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}
