package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/murikinatisankumar/blogspace/pkg/feed"
	"github.com/murikinatisankumar/blogspace/pkg/markup"
	"github.com/murikinatisankumar/blogspace/pkg/session"
)

type FeedHandler struct {
	Repo   feed.FeedRepo
	Logger *zap.SugaredLogger
}

type PostForm struct {
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// PostView is a single post plus everything the article page derives from it.
type PostView struct {
	*feed.Post
	Blocks       []markup.Block `json:"blocks"`
	CommentCount int            `json:"commentCount"`
	PublishedAgo string         `json:"publishedAgo"`
}

func (handler *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts := handler.Repo.GetAllPosts()

	posts = feed.Query(posts, feed.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Kind:     q.Get("kind"),
	})
	if q.Get("sort") == "trending" {
		posts = feed.Trending(posts)
	}

	err := sendJSON(w, http.StatusOK, posts)
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *FeedHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["ID"]

	currentPost, err := handler.Repo.GetPost(postID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	handler.Repo.AddViews(currentPost)

	view := PostView{
		Post:         currentPost,
		Blocks:       markup.Blocks(currentPost.Body),
		CommentCount: currentPost.CommentCount(),
		PublishedAgo: timeagoLabel(currentPost.PublishedAt),
	}
	err = sendJSON(w, http.StatusOK, view)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("post viewed",
		"postID", currentPost.ID)
}

func (handler *FeedHandler) AddPost(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("adding post")
	sess, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	js, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, ErrReadReqBody.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	pf := &PostForm{}
	err = json.Unmarshal(js, pf)
	if err != nil {
		http.Error(w, ErrJSONUnmarshal.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	currentPost := &feed.Post{
		Title:       pf.Title,
		Excerpt:     pf.Excerpt,
		Body:        pf.Body,
		Category:    pf.Category,
		Tags:        pf.Tags,
		Author:      feed.Author{Username: sess.Username, Name: sess.DisplayName, ID: sess.Username},
		PublishedAt: time.Now().UTC(),
		ReadTime:    markup.ReadingTime(pf.Body),
		Comments:    make([]*feed.Comment, 0),
		ID:          uuid.NewString(),
	}

	err = handler.Repo.AddPost(currentPost)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusCreated, currentPost)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("post added",
		"postID", currentPost.ID)
}

func (handler *FeedHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("delete post")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["ID"]
	handler.Repo.DeletePost(postID)

	err = sendJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"postID", postID)
}

func (handler *FeedHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle like")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["ID"]
	currentPost, err := handler.Repo.ToggleLike(postID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, currentPost)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"postID", postID,
		"isLiked", currentPost.IsLiked)
}

func (handler *FeedHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle bookmark")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["ID"]
	currentPost, err := handler.Repo.ToggleBookmark(postID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, currentPost)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"postID", postID,
		"isBookmarked", currentPost.IsBookmarked)
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

type CommentError struct {
	Location string `json:"location"`
	Param    string `json:"comment"`
	Msg      string `json:"msg"`
}

type ResponseCommentError struct {
	Errors []CommentError `json:"errors"`
}

func (handler *FeedHandler) sendAddCommentError(w http.ResponseWriter) {
	resp := ResponseCommentError{
		Errors: []CommentError{
			{Location: "body",
				Param: "comment",
				Msg:   "is required"},
		},
	}
	err := sendJSON(w, http.StatusUnprocessableEntity, resp)
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *FeedHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("add comment")
	sess, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	postID := mux.Vars(r)["ID"]

	reqBody, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, ErrReadReqBody.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	cq := &CommentRequest{}
	err = json.Unmarshal(reqBody, cq)
	if err != nil {
		http.Error(w, ErrJSONUnmarshal.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	commentAuthor := feed.Author{Username: sess.Username, Name: sess.DisplayName, ID: sess.Username}
	comment, err := handler.Repo.AddComment(postID, commentAuthor, cq.Comment)
	if errors.Is(err, feed.ErrEmptyComment) {
		handler.sendAddCommentError(w)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	currentPost, err := handler.Repo.GetPost(postID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusCreated, currentPost)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("comment added",
		"commentID", comment.ID,
		"postID", postID)
}

func (handler *FeedHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("delete comment")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	vars := mux.Vars(r)
	postID := vars["ID"]
	commentID := vars["COMMENT_ID"]

	err = handler.Repo.DeleteComment(postID, commentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	currentPost, err := handler.Repo.GetPost(postID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, currentPost)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Info("success")
}

func (handler *FeedHandler) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle comment like")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	commentID := mux.Vars(r)["COMMENT_ID"]
	comment, err := handler.Repo.ToggleCommentLike(commentID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, comment)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"commentID", commentID,
		"isLiked", comment.IsLiked)
}

func (handler *FeedHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("get user posts")
	username := mux.Vars(r)["USERNAME"]

	posts := handler.Repo.GetUserPosts(username)

	err := sendJSON(w, http.StatusOK, posts)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"username", username)
}
