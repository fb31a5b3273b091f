package database

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/madogan/personal-site-backend/models"
)

const postExtension = ".mdx"

// wordsPerMinute feeds the reading-time estimate shown on post cards.
const wordsPerMinute = 200

// BlogPostRepo stores one post per file under a content directory, keyed
// by slug. There is no cache: every read goes back to disk, so readers
// always observe the latest write at the cost of repeated I/O.
type BlogPostRepo struct {
	dir string
}

func NewBlogPostRepo(dir string) *BlogPostRepo {
	return &BlogPostRepo{dir: dir}
}

func (r *BlogPostRepo) path(slug string) string {
	return filepath.Join(r.dir, slug+postExtension)
}

// FindAll returns every parseable post, newest first. Date ordering is a
// plain string comparison on the YYYY-MM-DD field, not a calendar compare;
// non-ISO date strings therefore sort unpredictably. Inherited behavior,
// pinned by tests.
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.BlogPost{}, nil
		}
		return nil, fmt.Errorf("failed to read content directory: %w", err)
	}

	posts := make([]*models.BlogPost, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), postExtension) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), postExtension)
		post, err := r.FindBySlug(slug)
		if err != nil {
			return nil, err
		}
		if post == nil {
			// unparseable file, skipped by the fail-soft read policy
			continue
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// FindBySlug returns the post stored under slug, or (nil, nil) when no
// file exists. A file that fails to parse is also reported as absent
// rather than as an error; only filesystem failures propagate.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	raw, err := os.ReadFile(r.path(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read post %s: %w", slug, err)
	}

	fm, body, err := parseFrontMatter(raw)
	if err != nil {
		return nil, nil
	}
	return decodePost(slug, fm, body), nil
}

// Save writes the post to the file named by its slug, creating the content
// directory if needed. An existing file is overwritten unconditionally;
// there is no concurrency token, so the last writer wins.
func (r *BlogPostRepo) Save(post *models.BlogPost) error {
	data, err := encodePost(post)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}
	if err := os.WriteFile(r.path(post.Slug), data, 0o644); err != nil {
		return fmt.Errorf("failed to write post %s: %w", post.Slug, err)
	}
	return nil
}

// Delete removes the post file for slug. A missing file is success, which
// keeps multi-step group cleanup idempotent.
func (r *BlogPostRepo) Delete(slug string) error {
	err := os.Remove(r.path(slug))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete post %s: %w", slug, err)
	}
	return nil
}

// readingTime estimates minutes to read, minimum zero only for empty
// content; any non-empty body rounds up to at least one minute.
func readingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
