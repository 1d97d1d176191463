package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/murikinatisankumar/blogspace/pkg/feed"
	"github.com/murikinatisankumar/blogspace/pkg/session"
)

func newFeedRouter(t *testing.T) (*mux.Router, *feed.FeedMemoryRepository) {
	t.Helper()
	repo := feed.NewFeedMemoryRepository()

	posts := []*feed.Post{
		{ID: "1", Title: "The Future of Web Development", Excerpt: "Trends", Category: "Technology", Author: feed.Author{Username: "sarahchen", Name: "Sarah Chen"}, PublishedAt: time.Now().UTC().Add(-3 * time.Hour), Likes: 124, TrendingScore: 95, Comments: make([]*feed.Comment, 0)},
		{ID: "2", Title: "Clean Code", Excerpt: "Readable software", Category: "Programming", Author: feed.Author{Username: "emmathompson", Name: "Emma Thompson"}, PublishedAt: time.Now().UTC().Add(-26 * time.Hour), Likes: 156, TrendingScore: 82, Comments: make([]*feed.Comment, 0)},
	}
	for _, p := range posts {
		if err := repo.AddPost(p); err != nil {
			t.Fatalf("AddPost: %v", err)
		}
	}

	handler := FeedHandler{Repo: repo, Logger: zap.NewNop().Sugar()}
	r := mux.NewRouter()
	r.HandleFunc("/api/feed", handler.GetFeed).Methods("GET")
	r.HandleFunc("/api/post/{ID}", handler.GetPost).Methods("GET")
	r.HandleFunc("/api/post/{ID}/like", handler.ToggleLike).Methods("POST")
	r.HandleFunc("/api/post/{ID}/bookmark", handler.ToggleBookmark).Methods("POST")
	r.HandleFunc("/api/post/{ID}/comments", handler.AddComment).Methods("POST")
	return r, repo
}

func authedRequest(method, target string, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	sess := &session.Session{ID: "test", Username: "sarahchen", DisplayName: "Sarah Chen"}
	return r.WithContext(session.CreateContextWithSession(r.Context(), sess))
}

func TestGetFeedFiltersAndSorts(t *testing.T) {
	router, _ := newFeedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed?category=Programming", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var posts []*feed.Post
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "2" {
		t.Fatalf("filtered feed: %d posts", len(posts))
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/feed?sort=trending", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &posts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "1" {
		t.Fatalf("trending feed order: %v", posts)
	}
}

func TestGetPostRendersView(t *testing.T) {
	router, repo := newFeedRouter(t)

	post, _ := repo.GetPost("1")
	post.Body = "Opening.\n\n## Heading\n\nClosing."

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/post/1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var view PostView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(view.Blocks) != 3 {
		t.Fatalf("blocks: %d", len(view.Blocks))
	}
	if view.PublishedAgo != "3h ago" {
		t.Fatalf("publishedAgo: %q", view.PublishedAgo)
	}
	if view.Views != 1 {
		t.Fatalf("views not bumped: %d", view.Views)
	}
}

func TestToggleLikeEndpoint(t *testing.T) {
	router, repo := newFeedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/post/1/like", ""))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	post, _ := repo.GetPost("1")
	if !post.IsLiked || post.Likes != 125 {
		t.Fatalf("after like: isLiked=%v likes=%d", post.IsLiked, post.Likes)
	}

	// Without a session the toggle is rejected.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/api/post/1/like", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status %d", w.Code)
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	router, _ := newFeedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/post/missing/like", ""))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d", w.Code)
	}
}

func TestAddCommentEndpoint(t *testing.T) {
	router, repo := newFeedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/post/1/comments", `{"comment":"Great write-up"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	post, _ := repo.GetPost("1")
	if post.CommentCount() != 1 || post.Comments[0].Body != "Great write-up" {
		t.Fatalf("comments after add: %d", post.CommentCount())
	}
}

func TestAddCommentEmptyBodyRejected(t *testing.T) {
	router, repo := newFeedRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/api/post/1/comments", `{"comment":"   "}`))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", w.Code)
	}

	post, _ := repo.GetPost("1")
	if post.CommentCount() != 0 {
		t.Fatalf("comment created from blank body")
	}
}
