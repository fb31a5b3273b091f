package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/madogan/personal-site-backend/database"
	"github.com/madogan/personal-site-backend/models"
	"github.com/madogan/personal-site-backend/services"
)

func TestDecodeSideTriState(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantAbsent bool
		wantRemove bool
	}{
		{"field absent", `{}`, true, false},
		{"explicit null", `{"en": null}`, false, true},
		{"payload object", `{"en": {"slug": "x", "title": "T", "date": "2024-01-01", "locale": "en"}}`, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req groupUpdateRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatal(err)
			}

			payload, remove, err := decodeSide(req.EN)
			if err != nil {
				t.Fatalf("decodeSide() error = %v", err)
			}
			if remove != tt.wantRemove {
				t.Errorf("remove = %v, want %v", remove, tt.wantRemove)
			}
			if tt.wantAbsent || tt.wantRemove {
				if payload != nil {
					t.Errorf("payload = %+v, want nil", payload)
				}
			} else if payload == nil || payload.Slug != "x" {
				t.Errorf("payload = %+v, want slug x", payload)
			}
		})
	}
}

func TestDecodeSideMalformed(t *testing.T) {
	if _, _, err := decodeSide(json.RawMessage(`"just a string"`)); err == nil {
		t.Error("decodeSide() error = nil, want decode error")
	}
}

func newTestGroupHandler(t *testing.T) (blogGroupHandler, *database.BlogPostRepo) {
	t.Helper()
	repo := database.NewBlogPostRepo(t.TempDir())
	return newBlogGroupHandler(
		services.NewGroupResolver(repo),
		services.NewBlogService(repo),
	), repo
}

func seedPair(t *testing.T, repo *database.BlogPostRepo) {
	t.Helper()
	for _, p := range []*models.BlogPost{
		{Slug: "a", Title: "A", Date: "2024-01-02", Locale: models.LocaleEN, AlternateLocale: models.LocaleTR, AlternateSlug: "b", Content: "en body"},
		{Slug: "b", Title: "B", Date: "2024-01-01", Locale: models.LocaleTR, AlternateLocale: models.LocaleEN, AlternateSlug: "a", Content: "tr body"},
	} {
		if err := repo.Save(p); err != nil {
			t.Fatal(err)
		}
	}
}

func putGroup(handler blogGroupHandler, slug, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Put("/admin/blog-group/{slug}", handler.updateBlogGroup())

	req := httptest.NewRequest(http.MethodPut, "/admin/blog-group/"+slug, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUpdateBlogGroupRemovesSideViaNull(t *testing.T) {
	handler, repo := newTestGroupHandler(t)
	seedPair(t, repo)

	rec := putGroup(handler, "a", `{"en": null}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["slug"] != "b" {
		t.Errorf("slug = %s, want surviving b", resp["slug"])
	}

	if got, _ := repo.FindBySlug("a"); got != nil {
		t.Error("removed member still on disk")
	}
	survivor, _ := repo.FindBySlug("b")
	if survivor == nil || survivor.Linked() {
		t.Errorf("survivor = %+v, want present with cleared linkage", survivor)
	}
}

func TestUpdateBlogGroupOmittedSideUntouched(t *testing.T) {
	handler, repo := newTestGroupHandler(t)
	seedPair(t, repo)

	body := `{"en": {"slug": "a", "title": "A2", "date": "2024-01-02", "locale": "en"}}`
	rec := putGroup(handler, "a", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	en, _ := repo.FindBySlug("a")
	if en == nil || en.Title != "A2" {
		t.Errorf("EN member = %+v, want updated title", en)
	}
	// Linkage points at the untouched partner.
	if en.AlternateSlug != "b" {
		t.Errorf("EN alternateSlug = %s, want b", en.AlternateSlug)
	}
	tr, _ := repo.FindBySlug("b")
	if tr == nil || tr.Title != "B" {
		t.Errorf("TR member = %+v, want untouched", tr)
	}
}

func TestUpdateBlogGroupWrongLocaleForSlot(t *testing.T) {
	handler, repo := newTestGroupHandler(t)
	seedPair(t, repo)

	body := `{"en": {"slug": "a", "title": "A", "date": "2024-01-02", "locale": "tr"}}`
	rec := putGroup(handler, "a", body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateBlogGroupUnknownGroup(t *testing.T) {
	handler, _ := newTestGroupHandler(t)

	rec := putGroup(handler, "ghost", `{"en": null}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
