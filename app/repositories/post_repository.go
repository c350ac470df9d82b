package repositories

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"inkwell/app/frontmatter"
	"inkwell/app/models"
)

var (
	ErrNotFound = errors.New("post not found")
)

// slugPattern restricts slugs to filesystem-safe names.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// FilePostRepository implements PostRepository over a flat directory of
// markdown files. The filesystem is the source of truth: every call reads
// fresh, so external edits show up on the next request with no invalidation.
type FilePostRepository struct {
	dir string
	ext string
}

// NewFilePostRepository creates a repository over dir. ext defaults to ".md".
func NewFilePostRepository(dir, ext string) *FilePostRepository {
	if ext == "" {
		ext = ".md"
	}
	return &FilePostRepository{dir: dir, ext: ext}
}

// List reads and parses every post file in the directory. Any filesystem
// error or malformed filename fails the whole listing; there is no
// partial-success mode.
func (r *FilePostRepository) List() ([]*models.Post, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read post directory %s: %w", r.dir, err)
	}

	var posts []*models.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), r.ext) {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), r.ext)
		if !slugPattern.MatchString(slug) {
			return nil, fmt.Errorf("malformed post filename %s", entry.Name())
		}
		post, err := r.read(slug)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// GetBySlug loads a single post. A slug outside the allowed character set, a
// missing file, or a non-regular file all report ErrNotFound; other read
// errors propagate.
func (r *FilePostRepository) GetBySlug(slug string) (*models.Post, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrNotFound
	}

	info, err := os.Stat(r.path(slug))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	return r.read(slug)
}

func (r *FilePostRepository) path(slug string) string {
	return filepath.Join(r.dir, slug+r.ext)
}

func (r *FilePostRepository) read(slug string) (*models.Post, error) {
	data, err := os.ReadFile(r.path(slug))
	if err != nil {
		return nil, fmt.Errorf("failed to read post %s: %w", slug, err)
	}
	meta, body := frontmatter.Parse(string(data))
	return &models.Post{Slug: slug, Meta: meta, Body: body}, nil
}
