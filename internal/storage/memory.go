package storage

import (
	"sync"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

// MemoryStore implements Store with an in-process post slice.
// State lives until the process exits.
type MemoryStore struct {
	mu    sync.RWMutex
	posts []*models.Post
}

// NewMemoryStore creates a memory store pre-populated with seed content.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{posts: SeedPosts()}
}

// NewEmptyMemoryStore creates a memory store with no posts.
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListPosts retrieves all posts, newest first
func (s *MemoryStore) ListPosts() ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

// CreatePost validates, stores and returns a new post
func (s *MemoryStore) CreatePost(title, content, author string) (*models.Post, error) {
	post, err := buildPost(title, content, author)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.posts = append(s.posts, post)
	s.mu.Unlock()

	return post.Clone(), nil
}

// DeletePost removes a post by id. Deleting an unknown id is a no-op.
func (s *MemoryStore) DeletePost(id string, requestedByAdmin bool) error {
	if !requestedByAdmin {
		return &models.PermissionError{Action: "delete posts"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error { return nil }
