package feed

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type FeedMemoryRepository struct {
	AllData       map[string]*Post
	UserPostsData map[string][]*Post
	order         []*Post
	mu            *sync.RWMutex
}

var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrEmptyComment = errors.New("comment body is empty")
var ErrPostAlready = errors.New("post already exists")

func NewFeedMemoryRepository() *FeedMemoryRepository {
	return &FeedMemoryRepository{
		AllData:       make(map[string]*Post),
		UserPostsData: make(map[string][]*Post),
		order:         make([]*Post, 0),
		mu:            &sync.RWMutex{},
	}
}

func (repo *FeedMemoryRepository) AddPost(p *Post) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.AllData[p.ID]; ok {
		return ErrPostAlready
	}
	repo.AllData[p.ID] = p
	repo.order = append(repo.order, p)
	repo.UserPostsData[p.Author.Username] = append(repo.UserPostsData[p.Author.Username], p)
	return nil
}

func (repo *FeedMemoryRepository) GetPost(postID string) (*Post, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if post, ok := repo.AllData[postID]; ok {
		return post, nil
	}
	return nil, ErrPostNotFound
}

// GetAllPosts returns the posts in insertion order. Callers get a copy of the
// slice so a later AddPost cannot reorder a view they already hold.
func (repo *FeedMemoryRepository) GetAllPosts() []*Post {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	posts := make([]*Post, len(repo.order))
	copy(posts, repo.order)
	return posts
}

func (repo *FeedMemoryRepository) GetUserPosts(username string) []*Post {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	posts := make([]*Post, len(repo.UserPostsData[username]))
	copy(posts, repo.UserPostsData[username])
	return posts
}

func (repo *FeedMemoryRepository) AddViews(post *Post) {
	repo.mu.Lock()
	post.Views += 1
	repo.mu.Unlock()
}

// ToggleLike flips the flag and moves the counter by exactly one, under the
// same lock so the two never desynchronize.
func (repo *FeedMemoryRepository) ToggleLike(postID string) (*Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	post, ok := repo.AllData[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	if post.IsLiked {
		post.IsLiked = false
		post.Likes -= 1
	} else {
		post.IsLiked = true
		post.Likes += 1
	}
	return post, nil
}

func (repo *FeedMemoryRepository) ToggleBookmark(postID string) (*Post, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	post, ok := repo.AllData[postID]
	if !ok {
		return nil, ErrPostNotFound
	}
	post.IsBookmarked = !post.IsBookmarked
	return post, nil
}

func (repo *FeedMemoryRepository) AddComment(postID string, author Author, body string) (*Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyComment
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	post, ok := repo.AllData[postID]
	if !ok {
		return nil, ErrPostNotFound
	}

	comment := &Comment{
		Body:      body,
		Author:    author,
		CreatedAt: time.Now().UTC(),
		PostID:    postID,
		ID:        uuid.NewString(),
	}

	// Newest comment first, matching the reading order of the article page.
	post.Comments = append([]*Comment{comment}, post.Comments...)
	return comment, nil
}

func (repo *FeedMemoryRepository) ToggleCommentLike(commentID string) (*Comment, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, post := range repo.order {
		for _, comment := range post.Comments {
			if comment.ID != commentID {
				continue
			}
			if comment.IsLiked {
				comment.IsLiked = false
				comment.Likes -= 1
			} else {
				comment.IsLiked = true
				comment.Likes += 1
			}
			return comment, nil
		}
	}
	return nil, ErrCommentNotFound
}

// DeleteComment is a no-op when the comment is already gone.
func (repo *FeedMemoryRepository) DeleteComment(postID, commentID string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	post, ok := repo.AllData[postID]
	if !ok {
		return ErrPostNotFound
	}

	index := -1
	for i, comment := range post.Comments {
		if comment.ID == commentID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	copy(post.Comments[index:], post.Comments[index+1:])
	post.Comments = post.Comments[:len(post.Comments)-1]
	return nil
}

// DeletePost is idempotent; removing an absent post is not an error.
func (repo *FeedMemoryRepository) DeletePost(postID string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	post, ok := repo.AllData[postID]
	if !ok {
		return
	}
	delete(repo.AllData, postID)

	index := -1
	for i, p := range repo.order {
		if p.ID == postID {
			index = i
			break
		}
	}
	if index != -1 {
		copy(repo.order[index:], repo.order[index+1:])
		repo.order = repo.order[:len(repo.order)-1]
	}

	userPosts := repo.UserPostsData[post.Author.Username]
	index = -1
	for i, p := range userPosts {
		if p.ID == postID {
			index = i
			break
		}
	}
	if index != -1 {
		copy(userPosts[index:], userPosts[index+1:])
		repo.UserPostsData[post.Author.Username] = userPosts[:len(userPosts)-1]
	}
}
