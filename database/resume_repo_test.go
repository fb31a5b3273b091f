package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madogan/personal-site-backend/models"
)

func TestResumeSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume", "resume.json")
	repo := NewResumeRepo(path)

	want := models.ResumeData{
		"personal": map[string]any{"name": "Jane Doe", "email": "jane@example.com"},
		"skills":   []any{"Go", "Distributed Systems"},
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	personal, ok := got["personal"].(map[string]any)
	if !ok || personal["name"] != "Jane Doe" {
		t.Errorf("Load() personal = %v, want name Jane Doe", got["personal"])
	}
	skills, ok := got["skills"].([]any)
	if !ok || len(skills) != 2 || skills[0] != "Go" {
		t.Errorf("Load() skills = %v", got["skills"])
	}
}

func TestResumeLoadMissingFile(t *testing.T) {
	repo := NewResumeRepo(filepath.Join(t.TempDir(), "resume.json"))

	if _, err := repo.Load(); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestResumeSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewResumeRepo(filepath.Join(dir, "resume.json"))

	if err := repo.Save(models.ResumeData{"summary": "hello"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Errorf("stale temp file left behind: %s", entry.Name())
		}
	}
}
