package services

import (
	"fmt"
	"regexp"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
)

const maxSlugLength = 200

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// validSlug reports whether s is a well-formed post identifier.
func validSlug(s string) bool {
	return s != "" && len(s) <= maxSlugLength && slugPattern.MatchString(s)
}

// validateSlug guards slugs arriving as standalone arguments (lookups,
// deletes, renames).
func validateSlug(s string) *errs.ApiErr {
	if !validSlug(s) {
		return errs.NewInvalidFieldError("slug", "invalid slug")
	}
	return nil
}

// validatePayload checks an authored post payload field by field and joins
// the failures into one user-facing error. It never touches storage, so a
// rejected payload is guaranteed to have written nothing.
func validatePayload(p *models.BlogPostPayload) *errs.ApiErr {
	if p == nil {
		return errs.NewMalformedPayloadError("blog post", nil)
	}

	var messages []string
	switch {
	case p.Slug == "":
		messages = append(messages, "slug is required")
	case len(p.Slug) > maxSlugLength:
		messages = append(messages, fmt.Sprintf("slug must be %d characters or less", maxSlugLength))
	case !slugPattern.MatchString(p.Slug):
		messages = append(messages, "slug must contain only lowercase letters, numbers, and hyphens")
	}
	if p.Title == "" {
		messages = append(messages, "title is required")
	}
	if p.Date == "" {
		messages = append(messages, "date is required")
	}
	if !p.Locale.Valid() {
		messages = append(messages, "locale must be en or tr")
	}
	if p.AlternateLocale != "" && !p.AlternateLocale.Valid() {
		messages = append(messages, "alternateLocale must be en or tr")
	}
	if p.AlternateSlug != "" && !validSlug(p.AlternateSlug) {
		messages = append(messages, "alternateSlug must be a valid slug")
	}

	if len(messages) > 0 {
		return errs.NewValidationError(messages)
	}
	return nil
}
