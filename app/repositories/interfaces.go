package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	List() ([]*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
}
