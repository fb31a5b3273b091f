package models

// Locale is one of the two content languages served by the site.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleTR Locale = "tr"
)

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleTR
}

// Other returns the opposite locale.
func (l Locale) Other() Locale {
	if l == LocaleEN {
		return LocaleTR
	}
	return LocaleEN
}

// BlogPost represents a single post loaded from the content directory.
// The slug doubles as the filename stem; ReadingTime is derived from
// Content on every load and is never written back to disk.
type BlogPost struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
	Locale          Locale   `json:"locale"`
	AlternateLocale Locale   `json:"alternateLocale,omitempty"`
	AlternateSlug   string   `json:"alternateSlug,omitempty"`
	ReadingTime     int      `json:"readingTime"`
	Content         string   `json:"content"`
}

// Linked reports whether the post claims a sibling translation. Both
// alternate fields must be set; a half-set linkage behaves as unlinked.
func (p *BlogPost) Linked() bool {
	return p.AlternateLocale != "" && p.AlternateSlug != ""
}

// BlogPostPayload is the authored shape of a post as submitted by the
// admin UI. It mirrors BlogPost minus the derived ReadingTime field.
type BlogPostPayload struct {
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
	Locale          Locale   `json:"locale"`
	AlternateLocale Locale   `json:"alternateLocale,omitempty"`
	AlternateSlug   string   `json:"alternateSlug,omitempty"`
	Content         string   `json:"content"`
}

// Post converts the payload into a BlogPost record.
func (p *BlogPostPayload) Post() *BlogPost {
	return &BlogPost{
		Slug:            p.Slug,
		Title:           p.Title,
		Description:     p.Description,
		Date:            p.Date,
		Tags:            p.Tags,
		Locale:          p.Locale,
		AlternateLocale: p.AlternateLocale,
		AlternateSlug:   p.AlternateSlug,
		Content:         p.Content,
	}
}
