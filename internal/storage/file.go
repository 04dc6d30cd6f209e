package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

// FileStore implements Store on top of a single JSON document holding
// the whole post collection. Every mutation rewrites the entire file;
// every read loads it from scratch. A process-wide mutex serializes
// the read-modify-write cycle, but concurrent processes can still
// race and lose writes.
type FileStore struct {
	path   string
	logger *zap.Logger

	mu sync.Mutex
}

// NewFileStore creates a file-backed store at the given path,
// initializing it with seed content if the file is missing or
// unparsable.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, &models.StorageError{Op: "init", Err: err}
	}

	s := &FileStore{path: path, logger: logger}
	s.mu.Lock()
	s.load()
	s.mu.Unlock()
	return s, nil
}

// load reads the whole collection, falling back to seed data when the
// file is absent or corrupt. Callers must hold s.mu.
func (s *FileStore) load() []*models.Post {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("failed to read post file, reseeding",
				zap.String("path", s.path), zap.Error(err))
		}
		posts := SeedPosts()
		s.save(posts)
		return posts
	}

	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		s.logger.Warn("post file unparsable, reseeding",
			zap.String("path", s.path), zap.Error(err))
		posts = SeedPosts()
		s.save(posts)
		return posts
	}
	return posts
}

// save rewrites the entire collection. Failures are logged and
// swallowed: callers have already been told their mutation succeeded.
// Callers must hold s.mu.
func (s *FileStore) save(posts []*models.Post) {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode posts", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("failed to write post file",
			zap.String("path", s.path), zap.Error(err))
	}
}

// ListPosts retrieves all posts, newest first
func (s *FileStore) ListPosts() ([]*models.Post, error) {
	s.mu.Lock()
	posts := s.load()
	s.mu.Unlock()

	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Clone())
	}
	sortNewestFirst(out)
	return out, nil
}

// CreatePost validates, persists and returns a new post
func (s *FileStore) CreatePost(title, content, author string) (*models.Post, error) {
	post, err := buildPost(title, content, author)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	posts := s.load()
	posts = append(posts, post)
	s.save(posts)
	s.mu.Unlock()

	return post.Clone(), nil
}

// DeletePost removes a post by id. Deleting an unknown id is a no-op.
func (s *FileStore) DeletePost(id string, requestedByAdmin bool) error {
	if !requestedByAdmin {
		return &models.PermissionError{Action: "delete posts"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	posts := s.load()
	for i, p := range posts {
		if p.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			s.save(posts)
			return nil
		}
	}
	return nil
}

// Close is a no-op for the file store
func (s *FileStore) Close() error { return nil }
