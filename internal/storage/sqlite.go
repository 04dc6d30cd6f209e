package storage

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

// SQLiteStore implements Store using SQLite. Unlike the file store,
// mutations here are real transactions and nothing is rewritten
// wholesale.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store instance
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, &models.StorageError{Op: "open", Err: err}
	}

	store := &SQLiteStore{db: db}
	if err := store.initDB(); err != nil {
		return nil, err
	}

	return store, nil
}

// initDB initializes the database schema and seeds it on first run
func (s *SQLiteStore) initDB() error {
	query := `
	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		published_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_published_at ON posts(published_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return &models.StorageError{Op: "init", Err: err}
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return &models.StorageError{Op: "init", Err: err}
	}
	if count == 0 {
		for _, p := range SeedPosts() {
			if err := s.insert(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *SQLiteStore) insert(post *models.Post) error {
	_, err := s.db.Exec(
		"INSERT INTO posts (id, title, content, author, published_at) VALUES (?, ?, ?, ?, ?)",
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.PublishedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return &models.StorageError{Op: "insert", Err: err}
	}
	return nil
}

// ListPosts retrieves all posts, newest first. Insertion order (rowid)
// breaks timestamp ties.
func (s *SQLiteStore) ListPosts() ([]*models.Post, error) {
	query := `SELECT id, title, content, author, published_at
	          FROM posts ORDER BY published_at DESC, rowid ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, &models.StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		var publishedAt string

		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Author,
			&publishedAt,
		); err != nil {
			return nil, &models.StorageError{Op: "list", Err: err}
		}

		post.PublishedAt, _ = time.Parse(time.RFC3339Nano, publishedAt)
		posts = append(posts, &post)
	}

	return posts, rows.Err()
}

// CreatePost validates, persists and returns a new post
func (s *SQLiteStore) CreatePost(title, content, author string) (*models.Post, error) {
	post, err := buildPost(title, content, author)
	if err != nil {
		return nil, err
	}
	if err := s.insert(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post by id. Deleting an unknown id is a no-op.
func (s *SQLiteStore) DeletePost(id string, requestedByAdmin bool) error {
	if !requestedByAdmin {
		return &models.PermissionError{Action: "delete posts"}
	}

	if _, err := s.db.Exec("DELETE FROM posts WHERE id = ?", id); err != nil {
		return &models.StorageError{Op: "delete", Err: err}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
