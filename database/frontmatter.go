package database

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/madogan/personal-site-backend/models"
	"gopkg.in/yaml.v3"
)

var errNoFrontMatter = errors.New("no front matter found")
var errInvalidFrontMatter = errors.New("invalid front matter")

// frontMatter is the on-disk metadata header of a post file. The body
// follows the closing delimiter as raw MDX and is opaque to this layer.
type frontMatter struct {
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	Date            string   `yaml:"date"`
	Tags            []string `yaml:"tags"`
	Locale          string   `yaml:"locale"`
	AlternateLocale string   `yaml:"alternateLocale,omitempty"`
	AlternateSlug   string   `yaml:"alternateSlug,omitempty"`
}

const fmDelimiter = "---"

// parseFrontMatter splits a post file into its YAML header and body.
func parseFrontMatter(raw []byte) (frontMatter, []byte, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))

	open := []byte(fmDelimiter + "\n")
	if !bytes.HasPrefix(norm, open) {
		return frontMatter{}, nil, errNoFrontMatter
	}

	rest := norm[len(open):]
	parts := bytes.SplitN(rest, []byte("\n"+fmDelimiter+"\n"), 2)

	var yamlPart, bodyPart []byte
	switch {
	case len(parts) == 2:
		yamlPart = parts[0]
		bodyPart = parts[1]
	case bytes.HasSuffix(rest, []byte("\n"+fmDelimiter)):
		// header with no body
		yamlPart = rest[:len(rest)-len("\n"+fmDelimiter)]
	default:
		return frontMatter{}, nil, errInvalidFrontMatter
	}

	var fm frontMatter
	if err := yaml.Unmarshal(yamlPart, &fm); err != nil {
		return frontMatter{}, nil, err
	}
	return fm, bodyPart, nil
}

// decodePost builds a BlogPost from a parsed file. The locale defaults to
// "en" for files written before bilingual support; a half-set alternate
// linkage is dropped so it behaves as unlinked everywhere downstream.
func decodePost(slug string, fm frontMatter, body []byte) *models.BlogPost {
	locale := models.LocaleEN
	if fm.Locale == string(models.LocaleTR) {
		locale = models.LocaleTR
	}

	var altLocale models.Locale
	altSlug := fm.AlternateSlug
	if models.Locale(fm.AlternateLocale).Valid() {
		altLocale = models.Locale(fm.AlternateLocale)
	}
	if altLocale == "" || altSlug == "" {
		altLocale = ""
		altSlug = ""
	}

	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}

	content := string(body)
	return &models.BlogPost{
		Slug:            slug,
		Title:           fm.Title,
		Description:     fm.Description,
		Date:            fm.Date,
		Tags:            tags,
		Locale:          locale,
		AlternateLocale: altLocale,
		AlternateSlug:   altSlug,
		ReadingTime:     readingTime(content),
		Content:         content,
	}
}

// encodePost serializes a post back into header+body form.
func encodePost(post *models.BlogPost) ([]byte, error) {
	fm := frontMatter{
		Title:           post.Title,
		Description:     post.Description,
		Date:            post.Date,
		Tags:            post.Tags,
		Locale:          string(post.Locale),
		AlternateLocale: string(post.AlternateLocale),
		AlternateSlug:   post.AlternateSlug,
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	header, err := yaml.Marshal(&fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(fmDelimiter + "\n")
	buf.Write(header)
	buf.WriteString(fmDelimiter + "\n")
	// Body is written verbatim so that a write/read cycle preserves the
	// authored content byte for byte.
	buf.WriteString(post.Content)
	return buf.Bytes(), nil
}
