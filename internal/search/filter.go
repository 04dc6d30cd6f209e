// Package search filters and sorts post lists in memory.
package search

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adhikariaashish/gemini-blog/internal/models"
)

var titleCollator = collate.New(language.English, collate.IgnoreCase)

// Apply filters and sorts posts. Pure: the input slice and its posts
// are never mutated. Each filter field is skipped when empty; the
// remaining predicates are ANDed. All sorts are stable.
func Apply(posts []*models.Post, filters models.SearchFilters) []*models.Post {
	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Clone())
	}

	if keyword := strings.ToLower(strings.TrimSpace(filters.Keyword)); keyword != "" {
		out = keep(out, func(p *models.Post) bool {
			return strings.Contains(strings.ToLower(p.Title), keyword) ||
				strings.Contains(strings.ToLower(p.Content), keyword)
		})
	}

	if author := strings.ToLower(strings.TrimSpace(filters.Author)); author != "" {
		out = keep(out, func(p *models.Post) bool {
			return strings.Contains(strings.ToLower(p.Author), author)
		})
	}

	if filters.DateFrom != nil {
		from := startOfDay(*filters.DateFrom)
		out = keep(out, func(p *models.Post) bool {
			return !p.PublishedAt.Before(from)
		})
	}

	if filters.DateTo != nil {
		to := endOfDay(*filters.DateTo)
		out = keep(out, func(p *models.Post) bool {
			return !p.PublishedAt.After(to)
		})
	}

	switch filters.SortBy {
	case models.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishedAt.Before(out[j].PublishedAt)
		})
	case models.SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		})
	}

	return out
}

func keep(posts []*models.Post, pred func(*models.Post) bool) []*models.Post {
	filtered := posts[:0]
	for _, p := range posts {
		if pred(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// startOfDay truncates to midnight in the boundary's own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay is the last instant of the boundary's day, local time.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
