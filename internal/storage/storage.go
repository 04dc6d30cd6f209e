package storage

import "github.com/adhikariaashish/gemini-blog/internal/models"

// Store defines the interface for post storage
type Store interface {
	// ListPosts retrieves all posts, newest first
	ListPosts() ([]*models.Post, error)

	// CreatePost validates, persists and returns a new post
	CreatePost(title, content, author string) (*models.Post, error)

	// DeletePost removes a post by id. Requires the admin flag; a
	// missing id is a no-op, not an error.
	DeletePost(id string, requestedByAdmin bool) error

	// Close closes the storage connection
	Close() error
}
