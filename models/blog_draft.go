package models

// BlogDraft is the structured output of the draft-generation service. It
// carries the same authored fields as a BlogPostPayload minus slug and
// linkage; the admin UI fills those in before the draft is persisted.
type BlogDraft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	Content     string   `json:"content"`
}
