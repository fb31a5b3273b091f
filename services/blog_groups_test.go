package services

import (
	"sort"
	"testing"

	"github.com/madogan/personal-site-backend/models"
)

// memStore is an in-memory PostStore for service tests, mirroring the file
// repo's contract: FindBySlug reports absence as (nil, nil), Delete is
// idempotent, FindAll sorts by date descending.
type memStore struct {
	posts map[string]*models.BlogPost
}

func newMemStore(posts ...*models.BlogPost) *memStore {
	s := &memStore{posts: make(map[string]*models.BlogPost)}
	for _, p := range posts {
		cp := *p
		s.posts[p.Slug] = &cp
	}
	return s
}

func (s *memStore) FindAll() ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *memStore) FindBySlug(slug string) (*models.BlogPost, error) {
	p, ok := s.posts[slug]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) Save(post *models.BlogPost) error {
	cp := *post
	s.posts[post.Slug] = &cp
	return nil
}

func (s *memStore) Delete(slug string) error {
	delete(s.posts, slug)
	return nil
}

func post(slug, date string, locale models.Locale) *models.BlogPost {
	return &models.BlogPost{
		Slug:   slug,
		Title:  "Title " + slug,
		Date:   date,
		Tags:   []string{},
		Locale: locale,
	}
}

func linked(slug, date string, locale models.Locale, altSlug string) *models.BlogPost {
	p := post(slug, date, locale)
	p.AlternateLocale = locale.Other()
	p.AlternateSlug = altSlug
	return p
}

func TestBuildGroupsReciprocity(t *testing.T) {
	tests := []struct {
		name       string
		posts      []*models.BlogPost
		wantGroups int
		wantPaired bool
	}{
		{
			name: "mutual links form one pair",
			posts: []*models.BlogPost{
				linked("a", "2024-01-02", models.LocaleEN, "b"),
				linked("b", "2024-01-01", models.LocaleTR, "a"),
			},
			wantGroups: 1,
			wantPaired: true,
		},
		{
			name: "one-directional claim stays solo",
			posts: []*models.BlogPost{
				linked("a", "2024-01-02", models.LocaleEN, "b"),
				post("b", "2024-01-01", models.LocaleTR),
			},
			wantGroups: 2,
			wantPaired: false,
		},
		{
			name: "dangling claim stays solo",
			posts: []*models.BlogPost{
				linked("a", "2024-01-02", models.LocaleEN, "ghost"),
			},
			wantGroups: 1,
			wantPaired: false,
		},
		{
			name: "mismatched back-reference stays solo",
			posts: []*models.BlogPost{
				linked("a", "2024-01-02", models.LocaleEN, "b"),
				linked("b", "2024-01-01", models.LocaleTR, "c"),
				post("c", "2024-01-03", models.LocaleEN),
			},
			wantGroups: 3,
			wantPaired: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := BuildGroups(tt.posts)
			if len(groups) != tt.wantGroups {
				t.Fatalf("BuildGroups() returned %d groups, want %d", len(groups), tt.wantGroups)
			}
			paired := false
			for _, g := range groups {
				if g.EN != nil && g.TR != nil {
					paired = true
				}
			}
			if paired != tt.wantPaired {
				t.Errorf("paired = %v, want %v", paired, tt.wantPaired)
			}
		})
	}
}

func TestBuildGroupsEmitsEachPairOnce(t *testing.T) {
	groups := BuildGroups([]*models.BlogPost{
		linked("a", "2024-01-02", models.LocaleEN, "b"),
		linked("b", "2024-01-01", models.LocaleTR, "a"),
		post("c", "2024-01-03", models.LocaleEN),
	})

	if len(groups) != 2 {
		t.Fatalf("BuildGroups() returned %d groups, want 2", len(groups))
	}
}

func TestBuildGroupsPrimarySlugAndOrder(t *testing.T) {
	groups := BuildGroups([]*models.BlogPost{
		linked("en-post", "2024-01-01", models.LocaleEN, "tr-post"),
		linked("tr-post", "2024-06-01", models.LocaleTR, "en-post"),
		post("tr-solo", "2024-03-01", models.LocaleTR),
	})

	if len(groups) != 2 {
		t.Fatalf("BuildGroups() returned %d groups, want 2", len(groups))
	}
	// Pair sorts by the EN member's date (2024-01-01), so the solo from
	// March comes first.
	if groups[0].PrimarySlug != "tr-solo" {
		t.Errorf("groups[0].PrimarySlug = %s, want tr-solo", groups[0].PrimarySlug)
	}
	if groups[1].PrimarySlug != "en-post" {
		t.Errorf("pair PrimarySlug = %s, want the EN slug", groups[1].PrimarySlug)
	}
}

func TestGroupForSlug(t *testing.T) {
	store := newMemStore(
		linked("a", "2024-01-02", models.LocaleEN, "b"),
		linked("b", "2024-01-01", models.LocaleTR, "a"),
		linked("lonely", "2024-02-01", models.LocaleEN, "nobody"),
	)
	resolver := NewGroupResolver(store)

	g, err := resolver.GroupForSlug("b")
	if err != nil {
		t.Fatalf("GroupForSlug() error = %v", err)
	}
	if g == nil || g.EN == nil || g.TR == nil {
		t.Fatalf("GroupForSlug(b) = %+v, want full pair", g)
	}
	if g.PrimarySlug != "a" {
		t.Errorf("PrimarySlug = %s, want a", g.PrimarySlug)
	}

	g, err = resolver.GroupForSlug("lonely")
	if err != nil {
		t.Fatal(err)
	}
	if g == nil || g.TR != nil || g.EN == nil {
		t.Errorf("GroupForSlug(lonely) = %+v, want solo EN group", g)
	}

	g, err = resolver.GroupForSlug("missing")
	if err != nil {
		t.Fatal(err)
	}
	if g != nil {
		t.Errorf("GroupForSlug(missing) = %+v, want nil", g)
	}
}

func TestPrioritizeByLocalePairCollapses(t *testing.T) {
	posts := []*models.BlogPost{
		linked("a", "2024-01-02", models.LocaleEN, "b"),
		linked("b", "2024-01-01", models.LocaleTR, "a"),
		post("c", "2024-01-03", models.LocaleEN),
	}

	got := PrioritizeByLocale(posts, models.LocaleTR)

	if len(got) != 2 {
		t.Fatalf("PrioritizeByLocale() returned %d posts, want 2", len(got))
	}
	if got[0].Slug != "c" {
		t.Errorf("got[0].Slug = %s, want c (newest)", got[0].Slug)
	}
	if got[1].Slug != "b" {
		t.Errorf("got[1].Slug = %s, want b (preferred-locale member)", got[1].Slug)
	}
}

func TestPrioritizeByLocaleRepresentativeFallsBackToNewer(t *testing.T) {
	posts := []*models.BlogPost{
		linked("a", "2024-01-02", models.LocaleEN, "b"),
		// Both members EN: preference cannot decide, the newer date wins.
		func() *models.BlogPost {
			p := post("b", "2024-05-01", models.LocaleEN)
			p.AlternateLocale = models.LocaleTR
			p.AlternateSlug = "a"
			return p
		}(),
	}

	got := PrioritizeByLocale(posts, models.LocaleTR)

	if len(got) != 1 {
		t.Fatalf("PrioritizeByLocale() returned %d posts, want 1", len(got))
	}
	if got[0].Slug != "b" {
		t.Errorf("representative = %s, want b (newer)", got[0].Slug)
	}
}

func TestPrioritizeByLocaleUngroupedPreferenceBeforeDate(t *testing.T) {
	// Two ungrouped posts: the preferred locale ranks first even when its
	// date is older. Grouped representatives keep pure date order.
	posts := []*models.BlogPost{
		post("en-new", "2024-09-01", models.LocaleEN),
		post("tr-old", "2024-01-01", models.LocaleTR),
	}

	got := PrioritizeByLocale(posts, models.LocaleTR)

	if got[0].Slug != "tr-old" {
		t.Errorf("got[0].Slug = %s, want tr-old (locale preference first)", got[0].Slug)
	}
}

func TestPrioritizeByLocaleDoesNotModifyInput(t *testing.T) {
	posts := []*models.BlogPost{
		post("x", "2024-02-01", models.LocaleEN),
		post("y", "2024-03-01", models.LocaleTR),
	}

	PrioritizeByLocale(posts, models.LocaleTR)

	if posts[0].Slug != "x" || posts[1].Slug != "y" {
		t.Error("input slice was reordered")
	}
}

func TestAllTagsDeduplicatesAndSorts(t *testing.T) {
	a := post("a", "2024-01-01", models.LocaleEN)
	a.Tags = []string{"go", "web"}
	b := post("b", "2024-01-02", models.LocaleTR)
	b.Tags = []string{"web", "cloud"}

	got := AllTags([]*models.BlogPost{a, b})

	want := []string{"cloud", "go", "web"}
	if len(got) != len(want) {
		t.Fatalf("AllTags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllTags()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		header string
		want   models.Locale
	}{
		{"tr-TR,tr;q=0.9,en;q=0.8", models.LocaleTR},
		{"TR", models.LocaleTR},
		{"en-US,en;q=0.9", models.LocaleEN},
		{"", models.LocaleEN},
		{"fr-FR", models.LocaleEN},
	}

	for _, tt := range tests {
		if got := DetectLocale(tt.header); got != tt.want {
			t.Errorf("DetectLocale(%q) = %s, want %s", tt.header, got, tt.want)
		}
	}
}
