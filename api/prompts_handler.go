package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/madogan/personal-site-backend/database"
	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type promptsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	promptsRepo *database.PromptsRepo
}

func newPromptsHandler(promptsRepo *database.PromptsRepo) promptsHandler {
	logger := log.With().Str("handlerName", "promptsHandler").Logger()

	return promptsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		promptsRepo: promptsRepo,
	}
}

// getPrompts returns the active prompt templates
// @Summary Get prompt templates
// @Description Returns the draft-generation prompt templates currently in effect
// @Tags Prompts
// @Accept json
// @Produce json
// @Success 200 {object} models.PromptsConfig "Prompt templates"
// @Router /admin/prompts [get]
func (h promptsHandler) getPrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, h.promptsRepo.Load())
	}
}

// getDefaultPrompts returns the built-in prompt templates
// @Summary Get default prompt templates
// @Description Returns the built-in prompt templates, without touching the stored config
// @Tags Prompts
// @Accept json
// @Produce json
// @Success 200 {object} models.PromptsConfig "Default prompt templates"
// @Router /admin/prompts/defaults [get]
func (h promptsHandler) getDefaultPrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, models.DefaultPrompts())
	}
}

func validatePrompts(cfg models.PromptsConfig) *errs.ApiErr {
	if strings.TrimSpace(cfg.PromptEN) == "" {
		return errs.NewMissingRequiredFieldError("promptEn")
	}
	if strings.TrimSpace(cfg.PromptTR) == "" {
		return errs.NewMissingRequiredFieldError("promptTr")
	}
	if len(cfg.PromptEN) > models.MaxPromptLength {
		return errs.NewInvalidFieldError("promptEn", "prompt exceeds the maximum length")
	}
	if len(cfg.PromptTR) > models.MaxPromptLength {
		return errs.NewInvalidFieldError("promptTr", "prompt exceeds the maximum length")
	}
	return nil
}

// updatePrompts replaces the stored prompt templates
// @Summary Update prompt templates
// @Description Replaces both draft-generation prompt templates
// @Tags Prompts
// @Accept json
// @Produce json
// @Param prompts body models.PromptsConfig true "Prompt templates"
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid prompt data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving prompts"
// @Router /admin/prompts [put]
func (h promptsHandler) updatePrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg models.PromptsConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode prompts request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePrompts(cfg); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.promptsRepo.Save(cfg); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("save", "prompt templates", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "prompts updated successfully",
		})
	}
}

// resetPrompts restores the built-in prompt templates
// @Summary Reset prompt templates
// @Description Overwrites the stored config with the built-in prompt templates
// @Tags Prompts
// @Accept json
// @Produce json
// @Success 200 {object} models.PromptsConfig "Restored prompt templates"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error saving prompts"
// @Router /admin/prompts/reset [post]
func (h promptsHandler) resetPrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaults := models.DefaultPrompts()
		if err := h.promptsRepo.Save(defaults); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("save", "prompt templates", err))
			return
		}

		h.responder.WriteJSON(w, defaults)
	}
}
