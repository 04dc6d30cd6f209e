package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

func postAt(id, title, content, author string, published time.Time) *models.Post {
	return &models.Post{
		ID:          id,
		Title:       title,
		Content:     content,
		Author:      author,
		PublishedAt: published,
	}
}

func testPosts() []*models.Post {
	base := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	return []*models.Post{
		postAt("1", "Gamma", "about gardening", "Sarah Johnson", base.Add(48*time.Hour)),
		postAt("2", "Alpha", "all about AI writing", "Tech Enthusiast", base),
		postAt("3", "Beta", "sustainable living tips", "Green Living Guide", base.Add(24*time.Hour)),
	}
}

func ids(posts []*models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestApply_Sorting(t *testing.T) {
	posts := testPosts()

	t.Run("newest is the default", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{})
		assert.Equal(t, []string{"1", "3", "2"}, ids(got))
	})

	t.Run("oldest ascending", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{SortBy: models.SortOldest})
		assert.Equal(t, []string{"2", "3", "1"}, ids(got))
	})

	t.Run("title is lexicographic regardless of publish time", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{SortBy: models.SortTitle})
		require.Len(t, got, 3)
		assert.Equal(t, "Alpha", got[0].Title)
		assert.Equal(t, "Beta", got[1].Title)
		assert.Equal(t, "Gamma", got[2].Title)
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		same := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
		tied := []*models.Post{
			postAt("a", "One", "x", "A", same),
			postAt("b", "Two", "x", "B", same),
			postAt("c", "Three", "x", "C", same),
		}
		got := Apply(tied, models.SearchFilters{SortBy: models.SortNewest})
		assert.Equal(t, []string{"a", "b", "c"}, ids(got))
	})
}

func TestApply_Filters(t *testing.T) {
	posts := testPosts()

	t.Run("keyword matches title or content, case-insensitive", func(t *testing.T) {
		byTitle := Apply(posts, models.SearchFilters{Keyword: "alpha"})
		assert.Equal(t, []string{"2"}, ids(byTitle))

		byContent := Apply(posts, models.SearchFilters{Keyword: "GARDEN"})
		assert.Equal(t, []string{"1"}, ids(byContent))
	})

	t.Run("author substring, case-insensitive", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{Author: "johnson"})
		assert.Equal(t, []string{"1"}, ids(got))
	})

	t.Run("date range keeps whole boundary days", func(t *testing.T) {
		from := time.Date(2025, 6, 11, 18, 30, 0, 0, time.Local) // mid-day; start of day applies
		to := time.Date(2025, 6, 11, 1, 0, 0, 0, time.Local)     // early; end of day applies

		got := Apply(posts, models.SearchFilters{DateFrom: &from, DateTo: &to})
		assert.Equal(t, []string{"3"}, ids(got))
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{Keyword: "about", Author: "tech"})
		assert.Equal(t, []string{"2"}, ids(got))
	})

	t.Run("no match yields empty, not nil panic", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{Keyword: "zzz"})
		assert.Empty(t, got)
	})
}

func TestApply_PureAndIdempotent(t *testing.T) {
	posts := testPosts()
	filters := models.SearchFilters{Keyword: "about", SortBy: models.SortTitle}

	t.Run("idempotent", func(t *testing.T) {
		once := Apply(posts, filters)
		twice := Apply(once, filters)
		assert.Equal(t, ids(once), ids(twice))
	})

	t.Run("empty filters return all posts", func(t *testing.T) {
		got := Apply(posts, models.SearchFilters{})
		assert.Len(t, got, len(posts))
	})

	t.Run("input is never mutated", func(t *testing.T) {
		before := ids(posts)
		got := Apply(posts, models.SearchFilters{SortBy: models.SortTitle})
		got[0].Title = "mutated"
		assert.Equal(t, before, ids(posts))
		assert.NotEqual(t, "mutated", posts[1].Title)
	})
}
