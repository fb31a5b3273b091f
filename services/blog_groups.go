package services

import (
	"sort"
	"strings"

	"github.com/madogan/personal-site-backend/models"
)

// GroupResolver derives translation-pair views from the stored post set.
// Groups are computed fresh from disk on every call; nothing here caches,
// so results are always consistent with the latest mutation.
type GroupResolver struct {
	store PostStore
}

func NewGroupResolver(store PostStore) *GroupResolver {
	return &GroupResolver{store: store}
}

// Groups lists every group, derived from the full post set.
func (r *GroupResolver) Groups() ([]*models.BlogGroup, error) {
	posts, err := r.store.FindAll()
	if err != nil {
		return nil, err
	}
	return BuildGroups(posts), nil
}

// GroupForSlug resolves the group containing the post stored under slug,
// loading only that post and (if linked) its claimed partner. Returns
// (nil, nil) when no such post exists.
func (r *GroupResolver) GroupForSlug(slug string) (*models.BlogGroup, error) {
	return groupForSlug(r.store, slug)
}

func groupForSlug(store PostStore, slug string) (*models.BlogGroup, error) {
	post, err := store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	if !post.Linked() {
		return soloGroup(post), nil
	}
	other, err := store.FindBySlug(post.AlternateSlug)
	if err != nil {
		return nil, err
	}
	// A one-directional claim never forms a pair.
	if other == nil || other.AlternateSlug != post.Slug {
		return soloGroup(post), nil
	}
	return pairGroup(post, other), nil
}

// BuildGroups derives the group view from a post list. Two posts pair only
// when their alternateSlug references are mutual; a dangling or
// non-reciprocal claim leaves each side as its own solo group. Each pair is
// emitted once, keyed by its sorted slug pair. Output is ordered by the
// English member's date when present, else the Turkish member's,
// descending (string comparison, same quirk as the store's FindAll).
func BuildGroups(posts []*models.BlogPost) []*models.BlogGroup {
	bySlug := make(map[string]*models.BlogPost, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}

	seenPairs := make(map[string]struct{})
	groups := make([]*models.BlogGroup, 0, len(posts))

	for _, post := range posts {
		if !post.Linked() {
			groups = append(groups, soloGroup(post))
			continue
		}
		other := bySlug[post.AlternateSlug]
		if other == nil || other.AlternateSlug != post.Slug {
			groups = append(groups, soloGroup(post))
			continue
		}
		key := pairKey(post.Slug, post.AlternateSlug)
		if _, done := seenPairs[key]; done {
			continue
		}
		seenPairs[key] = struct{}{}
		groups = append(groups, pairGroup(post, other))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groupDate(groups[i]) > groupDate(groups[j])
	})
	return groups
}

func groupDate(g *models.BlogGroup) string {
	if g.EN != nil {
		return g.EN.Date
	}
	if g.TR != nil {
		return g.TR.Date
	}
	return ""
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func soloGroup(post *models.BlogPost) *models.BlogGroup {
	g := &models.BlogGroup{PrimarySlug: post.Slug}
	if post.Locale == models.LocaleEN {
		g.EN = post
	} else {
		g.TR = post
	}
	return g
}

// pairGroup assigns slots by each member's own locale. Overlapping locale
// data should not occur once reciprocity holds, but the fallback keeps
// both members placed and a primary slug chosen either way.
func pairGroup(post, other *models.BlogPost) *models.BlogGroup {
	g := &models.BlogGroup{}
	for _, p := range []*models.BlogPost{post, other} {
		if p.Locale == models.LocaleEN && g.EN == nil {
			g.EN = p
		} else if g.TR == nil {
			g.TR = p
		} else {
			g.EN = p
		}
	}
	if g.EN != nil {
		g.PrimarySlug = g.EN.Slug
	} else {
		g.PrimarySlug = g.TR.Slug
	}
	return g
}

// PrioritizeByLocale reorders a post list so that each translation pair
// present in the input surfaces exactly one representative, preferring the
// given locale, while recency ordering is preserved overall. Pure function;
// the input slice is not modified.
//
// Ordering rules, kept exactly as observed in production: the pair
// representative is the preferred-locale member when one exists, else the
// member with the more recent date. The final sort is stable with date
// descending as the key, except that two UNGROUPED posts compare by locale
// preference before date.
func PrioritizeByLocale(posts []*models.BlogPost, preferred models.Locale) []*models.BlogPost {
	bySlug := make(map[string]*models.BlogPost, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}

	// Discover reciprocal pairs in input order.
	type pair struct{ a, b *models.BlogPost }
	var pairs []pair
	seenPairs := make(map[string]struct{})
	grouped := make(map[string]bool)

	for _, post := range posts {
		if !post.Linked() {
			continue
		}
		other := bySlug[post.AlternateSlug]
		if other == nil || other.AlternateSlug != post.Slug {
			continue
		}
		key := pairKey(post.Slug, other.Slug)
		if _, done := seenPairs[key]; done {
			continue
		}
		seenPairs[key] = struct{}{}
		pairs = append(pairs, pair{a: post, b: other})
		grouped[post.Slug] = true
		grouped[other.Slug] = true
	}

	// One slot per pair: the preferred-locale member, else the newer one.
	out := make([]*models.BlogPost, 0, len(posts))
	for _, pr := range pairs {
		out = append(out, pickRepresentative(pr.a, pr.b, preferred))
	}
	for _, post := range posts {
		if !grouped[post.Slug] {
			out = append(out, post)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !grouped[a.Slug] && !grouped[b.Slug] {
			if a.Locale == preferred && b.Locale != preferred {
				return true
			}
			if a.Locale != preferred && b.Locale == preferred {
				return false
			}
		}
		return a.Date > b.Date
	})
	return out
}

func pickRepresentative(a, b *models.BlogPost, preferred models.Locale) *models.BlogPost {
	if a.Locale == preferred && b.Locale != preferred {
		return a
	}
	if b.Locale == preferred && a.Locale != preferred {
		return b
	}
	if b.Date > a.Date {
		return b
	}
	return a
}

// AllTags returns the distinct tags across posts, sorted. Duplicates are
// allowed in storage; deduplication happens here at display time.
func AllTags(posts []*models.BlogPost) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// FilterByLocale returns the posts authored in the given locale.
func FilterByLocale(posts []*models.BlogPost, locale models.Locale) []*models.BlogPost {
	out := make([]*models.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Locale == locale {
			out = append(out, post)
		}
	}
	return out
}

// DetectLocale maps an Accept-Language header to a supported locale:
// any mention of Turkish selects tr, everything else defaults to en.
func DetectLocale(acceptLanguage string) models.Locale {
	if strings.Contains(strings.ToLower(acceptLanguage), "tr") {
		return models.LocaleTR
	}
	return models.LocaleEN
}
