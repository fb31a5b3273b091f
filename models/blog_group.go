package models

// BlogGroup is a derived pairing of up to one post per locale, linked by
// mutual alternateSlug references. Groups are rebuilt from the post set on
// every read and are never persisted; any mutation invalidates them.
type BlogGroup struct {
	// PrimarySlug is the group's canonical identity: the English member's
	// slug when one exists, otherwise the Turkish member's slug.
	PrimarySlug string    `json:"primarySlug"`
	EN          *BlogPost `json:"en,omitempty"`
	TR          *BlogPost `json:"tr,omitempty"`
}

// Member returns the group member for the given locale, or nil.
func (g *BlogGroup) Member(locale Locale) *BlogPost {
	if locale == LocaleEN {
		return g.EN
	}
	return g.TR
}
