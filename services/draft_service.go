package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/errgroup"
)

const (
	draftTimeout   = 30 * time.Second
	maxTopicLength = 2000
	defaultTopic   = "General technical blog post topic."
)

// PromptsSource supplies the current per-locale prompt templates. Reads go
// through this dependency on every generation so admin edits take effect
// without a restart; there is no package-level prompt cache.
type PromptsSource interface {
	Load() models.PromptsConfig
}

// DraftService turns a topic (and optionally the existing other-locale
// post as context) into a structured blog draft via an LLM. The model is
// expected to answer with a single JSON object; anything else counts as
// invalid output, which the admin can retry.
type DraftService struct {
	llm     llms.Model
	prompts PromptsSource
	timeout time.Duration
	now     func() time.Time
}

// NewDraftService wires the service. llm may be nil when no API key is
// configured; Generate then fails with a configuration error instead of
// panicking at startup.
func NewDraftService(llm llms.Model, prompts PromptsSource) *DraftService {
	return &DraftService{
		llm:     llm,
		prompts: prompts,
		timeout: draftTimeout,
		now:     time.Now,
	}
}

// DraftContext carries the existing post of the other locale, fed to the
// model as reference material when translating.
type DraftContext struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}

// DraftRequest selects what to generate: a single locale, or "both" for a
// bilingual pair in one call.
type DraftRequest struct {
	Locale     string        `json:"locale"`
	Topic      string        `json:"topic"`
	ExistingEN *DraftContext `json:"existingEn,omitempty"`
	ExistingTR *DraftContext `json:"existingTr,omitempty"`
}

// DraftResult holds the generated draft per locale. In "both" mode either
// side may be nil when the model produced unusable output for it.
type DraftResult struct {
	EN *models.BlogDraft `json:"en,omitempty"`
	TR *models.BlogDraft `json:"tr,omitempty"`
}

func (s *DraftService) Generate(ctx context.Context, req DraftRequest) (*DraftResult, error) {
	if s.llm == nil {
		return nil, errs.NewConfigError("draft generation API key", nil)
	}

	topic := strings.TrimSpace(req.Topic)
	if len(topic) > maxTopicLength {
		topic = topic[:maxTopicLength]
	}
	if topic == "" {
		topic = defaultTopic
	}

	switch req.Locale {
	case "en":
		draft, err := s.generateOne(ctx, models.LocaleEN, topic, contextText(req.ExistingTR))
		if err != nil {
			return nil, err
		}
		if draft == nil {
			return nil, errs.NewInvalidOutputError("draft generation")
		}
		return &DraftResult{EN: draft}, nil

	case "tr":
		draft, err := s.generateOne(ctx, models.LocaleTR, topic, contextText(req.ExistingEN))
		if err != nil {
			return nil, err
		}
		if draft == nil {
			return nil, errs.NewInvalidOutputError("draft generation")
		}
		return &DraftResult{TR: draft}, nil

	case "both":
		// The two locales are independent requests; run them concurrently
		// and tolerate unusable output on either side.
		var result DraftResult
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			draft, err := s.generateOne(gctx, models.LocaleEN, topic, contextText(req.ExistingTR))
			if err != nil {
				return err
			}
			result.EN = draft
			return nil
		})
		g.Go(func() error {
			draft, err := s.generateOne(gctx, models.LocaleTR, topic, "")
			if err != nil {
				return err
			}
			result.TR = draft
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &result, nil

	default:
		return nil, errs.NewInvalidFieldError("locale", "locale must be en, tr, or both")
	}
}

// generateOne runs a single model call under the service timeout. A
// transport or model failure returns an error; a response that does not
// parse into a draft returns (nil, nil).
func (s *DraftService) generateOne(ctx context.Context, locale models.Locale, topic, contextText string) (*models.BlogDraft, error) {
	prompt := s.buildPrompt(locale, topic, contextText)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := llms.GenerateFromSinglePrompt(callCtx, s.llm, prompt)
	if err != nil {
		return nil, mapModelError(err)
	}
	return s.parseDraft(text), nil
}

func (s *DraftService) buildPrompt(locale models.Locale, topic, contextText string) string {
	cfg := s.prompts.Load()
	out := strings.ReplaceAll(cfg.Template(locale), "{{topic}}", topic)
	return strings.ReplaceAll(out, "{{context}}", contextText)
}

func contextText(existing *DraftContext) string {
	if existing == nil {
		return ""
	}
	return fmt.Sprintf("Title: %s\nDescription: %s\nTags: %s\n\nContent:\n%s",
		existing.Title, existing.Description, strings.Join(existing.Tags, ", "), existing.Content)
}

func mapModelError(err error) *errs.ApiErr {
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, context.DeadlineExceeded) || strings.Contains(msg, "timeout"):
		return errs.NewTimeoutError("draft generation")
	case strings.Contains(msg, "429") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "rate limit"):
		return errs.NewRateLimitError("draft generation")
	default:
		return errs.NewGenerationError("draft generation", err)
	}
}

var codeFencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)```\\s*$")

// extractJSON strips an optional markdown code fence the model sometimes
// wraps around its answer.
func extractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}
	return trimmed
}

// parseDraft decodes the model response into a draft, or nil when the
// response is not a usable draft. A missing date defaults to today.
func (s *DraftService) parseDraft(text string) *models.BlogDraft {
	var draft models.BlogDraft
	if err := json.Unmarshal([]byte(extractJSON(text)), &draft); err != nil {
		return nil
	}
	if draft.Title == "" || draft.Content == "" {
		return nil
	}
	if draft.Tags == nil {
		draft.Tags = []string{}
	}
	if draft.Date == "" {
		draft.Date = s.now().Format("2006-01-02")
	}
	return &draft
}
