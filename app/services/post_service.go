package services

import (
	"fmt"
	"html/template"
	"sort"

	"inkwell/app/markdown"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	repo     repositories.PostRepository
	renderer *markdown.Renderer
}

// NewPostService creates a new PostService
func NewPostService(repo repositories.PostRepository, renderer *markdown.Renderer) *PostService {
	return &PostService{
		repo:     repo,
		renderer: renderer,
	}
}

// ListSummaries assembles the listing view. Every post is read fresh, its
// body abridged, and the abridged markdown rendered to HTML. Summaries are
// sorted by date descending with ties broken by slug, so listings stay
// deterministic regardless of directory enumeration order.
func (s *PostService) ListSummaries() ([]*models.PostSummary, error) {
	posts, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.PostSummary, 0, len(posts))
	for _, post := range posts {
		rendered, err := s.renderer.Render(Abridge(post.Body))
		if err != nil {
			return nil, fmt.Errorf("failed to render post %s: %w", post.Slug, err)
		}
		summaries = append(summaries, &models.PostSummary{
			Name:    post.Slug,
			Title:   post.Title(),
			Date:    post.Date(),
			Link:    "/" + post.Slug,
			Content: template.HTML(rendered),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date > summaries[j].Date
		}
		return summaries[i].Name < summaries[j].Name
	})

	return summaries, nil
}

// GetPost returns the parsed metadata and raw body for a single post. The
// body is left unrendered: the presentation layer renders markdown at display
// time, unlike listings which bake pre-rendered previews into the summary.
func (s *PostService) GetPost(slug string) (*models.Post, error) {
	return s.repo.GetBySlug(slug)
}
