package services

import "github.com/madogan/personal-site-backend/models"

// PostStore is the storage contract the blog services depend on. It is
// implemented by database.BlogPostRepo over flat files today; anything that
// can list, get, put and delete posts by slug can stand in for it.
//
// Read semantics the services rely on: FindBySlug returns (nil, nil) for a
// missing or unparseable post, and Delete succeeds on an already-missing
// slug.
type PostStore interface {
	FindAll() ([]*models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Save(post *models.BlogPost) error
	Delete(slug string) error
}
