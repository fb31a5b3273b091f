package services

import (
	"github.com/madogan/personal-site-backend/errs"
	"github.com/madogan/personal-site-backend/models"
)

// ResumeStore is the storage contract for the resume document.
type ResumeStore interface {
	Load() (models.ResumeData, error)
	Save(data models.ResumeData) error
}

// ResumeService reads and partially updates the resume document. A partial
// update deep-merges the patch into the stored document by key; arrays are
// replaced wholesale, never concatenated.
type ResumeService struct {
	store ResumeStore
}

func NewResumeService(store ResumeStore) *ResumeService {
	return &ResumeService{store: store}
}

func (s *ResumeService) Get() (models.ResumeData, error) {
	data, err := s.store.Load()
	if err != nil {
		return nil, errs.NewStorageError("load", "resume data", err)
	}
	return data, nil
}

func (s *ResumeService) Update(patch models.ResumeData) error {
	if len(patch) == 0 {
		return errs.NewMalformedPayloadError("resume", nil)
	}
	existing, err := s.store.Load()
	if err != nil {
		return errs.NewStorageError("load", "resume data", err)
	}
	merged := existing.Merge(patch)
	if err := s.store.Save(merged); err != nil {
		return errs.NewStorageError("save", "resume data", err)
	}
	return nil
}
