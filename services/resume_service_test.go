package services

import (
	"errors"
	"testing"

	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
)

type memResumeStore struct {
	data    models.ResumeData
	loadErr error
}

func (s *memResumeStore) Load() (models.ResumeData, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.data, nil
}

func (s *memResumeStore) Save(data models.ResumeData) error {
	s.data = data
	return nil
}

func TestResumeUpdateDeepMerges(t *testing.T) {
	store := &memResumeStore{data: models.ResumeData{
		"personal": map[string]any{"name": "Jane", "email": "jane@example.com"},
		"summary":  "old summary",
		"skills":   []any{"Go", "SQL"},
	}}
	svc := NewResumeService(store)

	err := svc.Update(models.ResumeData{
		"personal": map[string]any{"email": "new@example.com"},
		"skills":   []any{"Rust"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	personal := store.data["personal"].(map[string]any)
	if personal["name"] != "Jane" {
		t.Error("untouched nested key lost in merge")
	}
	if personal["email"] != "new@example.com" {
		t.Errorf("email = %v, want new@example.com", personal["email"])
	}
	if store.data["summary"] != "old summary" {
		t.Error("unpatched top-level key lost in merge")
	}

	// Arrays replace wholesale, never concatenate.
	skills := store.data["skills"].([]any)
	if len(skills) != 1 || skills[0] != "Rust" {
		t.Errorf("skills = %v, want [Rust]", skills)
	}
}

func TestResumeUpdateRejectsEmptyPatch(t *testing.T) {
	svc := NewResumeService(&memResumeStore{data: models.ResumeData{}})

	if err := svc.Update(models.ResumeData{}); !errs.IsMalformedPayloadError(err) {
		t.Errorf("Update() error = %v, want malformed payload", err)
	}
}

func TestResumeGetWrapsStorageError(t *testing.T) {
	svc := NewResumeService(&memResumeStore{loadErr: errors.New("disk gone")})

	_, err := svc.Get()
	if !errs.IsStorageError(err) {
		t.Errorf("Get() error = %v, want storage error", err)
	}
}
