package api

import (
	"encoding/json"
	"net/http"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/madogan/personal-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type resumeHandler struct {
	responder     Responder
	logger        zerolog.Logger
	resumeService *services.ResumeService
}

func newResumeHandler(resumeService *services.ResumeService) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		resumeService: resumeService,
	}
}

// getResume returns the full resume document
// @Summary Get resume
// @Description Returns the resume document
// @Tags Resume
// @Accept json
// @Produce json
// @Success 200 {object} models.ResumeData "Resume document"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error loading resume"
// @Router /resume [get]
func (h resumeHandler) getResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumeService.Get()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, resume)
	}
}

// updateResume applies a partial update to the resume document
// @Summary Update resume
// @Description Deep-merges the supplied patch into the resume document; arrays are replaced wholesale
// @Tags Resume
// @Accept json
// @Produce json
// @Param patch body models.ResumeData true "Partial resume data"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid patch"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving resume"
// @Router /admin/resume [patch]
func (h resumeHandler) updateResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.ResumeData
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode resume patch")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.resumeService.Update(patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "resume updated successfully",
		})
	}
}
