package feed

import "testing"

func queryFixture() []*Post {
	return []*Post{
		{ID: "1", Title: "The Future of Web Development", Excerpt: "Trends to watch", Category: "Technology", Tags: []string{"AI"}, Author: Author{Username: "sarahchen", Name: "Sarah Chen"}, Likes: 124, TrendingScore: 95, IsLiked: true},
		{ID: "2", Title: "Scalable React Applications", Excerpt: "Structure and optimize", Category: "Programming", Tags: []string{"React"}, Author: Author{Username: "alexrod", Name: "Alex Rodriguez"}, Likes: 89, TrendingScore: 88, IsBookmarked: true},
		{ID: "3", Title: "The Art of Clean Code", Excerpt: "Readable software", Category: "Programming", Tags: []string{"Clean Code"}, Author: Author{Username: "emmathompson", Name: "Emma Thompson"}, Likes: 156, TrendingScore: 88},
	}
}

func ids(posts []*Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestQueryIdentityFilter(t *testing.T) {
	posts := queryFixture()

	got := Query(posts, Filter{Search: "", Category: "All"})
	if !equalIDs(ids(got), []string{"1", "2", "3"}) {
		t.Fatalf("identity filter reordered or dropped posts: %v", ids(got))
	}
}

func TestQuerySearchMatchesTitleExcerptAndAuthor(t *testing.T) {
	posts := queryFixture()

	cases := []struct {
		search string
		want   []string
	}{
		{"future", []string{"1"}},
		{"READABLE", []string{"3"}},
		{"alex", []string{"2"}},
		{"emmathompson", []string{"3"}},
		{"nomatch", []string{}},
	}
	for _, tc := range cases {
		got := ids(Query(posts, Filter{Search: tc.search}))
		if !equalIDs(got, tc.want) {
			t.Errorf("search %q: got %v, want %v", tc.search, got, tc.want)
		}
	}
}

func TestQueryCategoryAndTag(t *testing.T) {
	posts := queryFixture()

	if got := ids(Query(posts, Filter{Category: "Programming"})); !equalIDs(got, []string{"2", "3"}) {
		t.Fatalf("category filter: %v", got)
	}
	if got := ids(Query(posts, Filter{Category: "AI"})); !equalIDs(got, []string{"1"}) {
		t.Fatalf("tag filter: %v", got)
	}
}

func TestQueryKindFilter(t *testing.T) {
	posts := queryFixture()

	if got := ids(Query(posts, Filter{Kind: KindLiked})); !equalIDs(got, []string{"1"}) {
		t.Fatalf("liked filter: %v", got)
	}
	if got := ids(Query(posts, Filter{Kind: KindBookmarked})); !equalIDs(got, []string{"2"}) {
		t.Fatalf("bookmarked filter: %v", got)
	}
	if got := ids(Query(posts, Filter{Kind: KindAll})); !equalIDs(got, []string{"1", "2", "3"}) {
		t.Fatalf("all filter: %v", got)
	}
}

func TestQueryPredicatesAreANDed(t *testing.T) {
	posts := queryFixture()

	got := ids(Query(posts, Filter{Search: "clean", Category: "Programming", Kind: KindLiked}))
	if !equalIDs(got, []string{}) {
		t.Fatalf("ANDed predicates: %v, want empty", got)
	}
}

func TestQueryIsDeterministic(t *testing.T) {
	posts := queryFixture()
	f := Filter{Category: "Programming"}

	first := ids(Query(posts, f))
	second := ids(Query(posts, f))
	if !equalIDs(first, second) {
		t.Fatalf("same inputs, different order: %v vs %v", first, second)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	posts := queryFixture()
	before := ids(posts)

	Query(posts, Filter{Search: "react"})
	Trending(posts)

	if !equalIDs(ids(posts), before) {
		t.Fatalf("input slice mutated: %v", ids(posts))
	}
}

func TestTrendingStableSort(t *testing.T) {
	posts := queryFixture()

	got := ids(Trending(posts))
	// Posts 2 and 3 tie on trending score; input order breaks the tie.
	if !equalIDs(got, []string{"1", "2", "3"}) {
		t.Fatalf("trending order: %v", got)
	}
}

func TestTrendingFallsBackToLikes(t *testing.T) {
	posts := []*Post{
		{ID: "a", Likes: 3},
		{ID: "b", Likes: 9},
	}
	got := ids(Trending(posts))
	if !equalIDs(got, []string{"b", "a"}) {
		t.Fatalf("like fallback order: %v", got)
	}
}
