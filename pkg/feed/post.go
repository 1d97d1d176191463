package feed

import "time"

type Post struct {
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Body          string     `json:"body,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	Author        Author     `json:"author"`
	PublishedAt   time.Time  `json:"publishedAt"`
	ReadTime      int        `json:"readTime"`
	Views         int        `json:"views"`
	Likes         int        `json:"likes"`
	IsLiked       bool       `json:"isLiked"`
	IsBookmarked  bool       `json:"isBookmarked"`
	TrendingScore int        `json:"trendingScore,omitempty"`
	Comments      []*Comment `json:"comments"`
	ID            string     `json:"id"`
}

type Author struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

type Comment struct {
	Body      string    `json:"body"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created"`
	Likes     int       `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	PostID    string    `json:"postId"`
	ID        string    `json:"id"`
}

// CommentCount is derived, never stored.
func (p *Post) CommentCount() int {
	return len(p.Comments)
}

type FeedRepo interface {
	AddPost(p *Post) error
	GetPost(postID string) (*Post, error)
	GetAllPosts() []*Post
	GetUserPosts(username string) []*Post
	AddViews(post *Post)
	ToggleLike(postID string) (*Post, error)
	ToggleBookmark(postID string) (*Post, error)
	AddComment(postID string, author Author, body string) (*Comment, error)
	ToggleCommentLike(commentID string) (*Comment, error)
	DeleteComment(postID, commentID string) error
	DeletePost(postID string)
}
