package database

import (
	"encoding/json"
	"os"

	"github.com/madogan/personal-site-backend/models"
)

// PromptsRepo stores the per-locale draft-generation prompt templates as a
// single JSON config file.
type PromptsRepo struct {
	path string
}

func NewPromptsRepo(path string) *PromptsRepo {
	return &PromptsRepo{path: path}
}

// Load returns the stored templates. A missing file, unreadable file, or
// invalid document falls back to the in-code defaults; defaults are never
// auto-written back to disk.
func (r *PromptsRepo) Load() models.PromptsConfig {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return models.DefaultPrompts()
	}
	var cfg models.PromptsConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return models.DefaultPrompts()
	}
	if cfg.PromptEN == "" || cfg.PromptTR == "" ||
		len(cfg.PromptEN) > models.MaxPromptLength || len(cfg.PromptTR) > models.MaxPromptLength {
		return models.DefaultPrompts()
	}
	return cfg
}

// Save persists the templates atomically (temp file + rename).
func (r *PromptsRepo) Save(cfg models.PromptsConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(r.path, raw)
}
