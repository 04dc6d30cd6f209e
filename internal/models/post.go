package models

import "time"

// Post represents a published blog post
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Clone returns a copy of the post so callers can't mutate stored entries.
func (p *Post) Clone() *Post {
	c := *p
	return &c
}

// SortOrder selects how a filtered post list is ordered
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

// SearchFilters holds the ephemeral search state applied to a post list
type SearchFilters struct {
	Keyword  string     `json:"keyword"`
	Author   string     `json:"author"`
	DateFrom *time.Time `json:"dateFrom,omitempty"`
	DateTo   *time.Time `json:"dateTo,omitempty"`
	SortBy   SortOrder  `json:"sortBy"`
}

// Session is the client-held login state. IsAdmin is trusted as sent
// by the client on privileged calls.
type Session struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}
