package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/madogan/personal-site-backend/models"
)

func TestPromptsLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		write   bool
	}{
		{"missing file", "", false},
		{"invalid json", "{not json", true},
		{"empty prompt", `{"promptEn": "", "promptTr": "x"}`, true},
		{"over-length prompt", `{"promptEn": "` + strings.Repeat("a", models.MaxPromptLength+1) + `", "promptTr": "x"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if tt.write {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got := NewPromptsRepo(path).Load()
			if got != models.DefaultPrompts() {
				t.Errorf("Load() = custom config, want defaults")
			}
		})
	}
}

func TestPromptsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "prompts.json")
	repo := NewPromptsRepo(path)

	want := models.PromptsConfig{
		PromptEN: "Write about {{topic}} in English. Context: {{context}}",
		PromptTR: "{{topic}} hakkında Türkçe yaz. Bağlam: {{context}}",
	}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if got := repo.Load(); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestPromptsDefaultsNeverWrittenBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	repo := NewPromptsRepo(path)

	repo.Load()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() created the config file, defaults must stay in code")
	}
}
