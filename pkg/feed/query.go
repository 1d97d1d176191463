package feed

import (
	"sort"
	"strings"
)

const (
	KindAll        = "all"
	KindLiked      = "liked"
	KindBookmarked = "bookmarked"
)

type Filter struct {
	Search   string
	Category string
	Kind     string
}

// Query returns the posts matching every set filter, in the order they appear
// in the input. It never mutates the input slice.
func Query(posts []*Post, f Filter) []*Post {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	result := make([]*Post, 0, len(posts))
	for _, post := range posts {
		if !matchesSearch(post, search) {
			continue
		}
		if !matchesCategory(post, f.Category) {
			continue
		}
		if !matchesKind(post, f.Kind) {
			continue
		}
		result = append(result, post)
	}
	return result
}

// Trending returns a copy of posts ordered by trending score descending,
// falling back to like count when no score is set. Ties keep input order.
func Trending(posts []*Post) []*Post {
	result := make([]*Post, len(posts))
	copy(result, posts)

	sort.SliceStable(result, func(i, j int) bool {
		return trendKey(result[i]) > trendKey(result[j])
	})
	return result
}

func trendKey(p *Post) int {
	if p.TrendingScore != 0 {
		return p.TrendingScore
	}
	return p.Likes
}

func matchesSearch(p *Post, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Excerpt), search) ||
		strings.Contains(strings.ToLower(p.Author.Name), search) ||
		strings.Contains(strings.ToLower(p.Author.Username), search)
}

func matchesCategory(p *Post, category string) bool {
	if category == "" || category == "All" {
		return true
	}
	if p.Category == category {
		return true
	}
	for _, tag := range p.Tags {
		if tag == category {
			return true
		}
	}
	return false
}

func matchesKind(p *Post, kind string) bool {
	switch kind {
	case "", KindAll:
		return true
	case KindLiked:
		return p.IsLiked
	case KindBookmarked:
		return p.IsBookmarked
	}
	return false
}
