package database

import "path/filepath"

// Database aggregates the flat-file repositories over a single content
// directory. The layout mirrors the authored site content:
//
//	<root>/blog/<slug>.mdx      one post per file
//	<root>/resume/resume.json   resume/profile document
//	<root>/config/prompts.json  draft-generation prompt templates
type Database struct {
	blogPostRepo *BlogPostRepo
	resumeRepo   *ResumeRepo
	promptsRepo  *PromptsRepo
}

// New initializes a new Database struct with each repository rooted under
// the given content directory.
func New(contentDir string) Database {
	return Database{
		blogPostRepo: NewBlogPostRepo(filepath.Join(contentDir, "blog")),
		resumeRepo:   NewResumeRepo(filepath.Join(contentDir, "resume", "resume.json")),
		promptsRepo:  NewPromptsRepo(filepath.Join(contentDir, "config", "prompts.json")),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ResumeRepo() *ResumeRepo {
	return d.resumeRepo
}

func (d Database) PromptsRepo() *PromptsRepo {
	return d.promptsRepo
}
