package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/madogan/personal-site-backend/models"
)

// ResumeRepo stores the resume/profile document as a single JSON file.
type ResumeRepo struct {
	path string
}

func NewResumeRepo(path string) *ResumeRepo {
	return &ResumeRepo{path: path}
}

// Load reads and decodes the full resume document.
func (r *ResumeRepo) Load() (models.ResumeData, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume data: %w", err)
	}
	var data models.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode resume data: %w", err)
	}
	return data, nil
}

// Save writes the document atomically: marshal to a uniquely-named temp
// file in the same directory, then rename over the target. Readers never
// observe a half-written file.
func (r *ResumeRepo) Save(data models.ResumeData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode resume data: %w", err)
	}
	return writeFileAtomic(r.path, raw)
}

// writeFileAtomic creates the parent directory if needed and replaces the
// target via temp file + rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf("%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
