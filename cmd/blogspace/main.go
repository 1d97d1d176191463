package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/murikinatisankumar/blogspace/middleware"
	"github.com/murikinatisankumar/blogspace/pkg/author"
	"github.com/murikinatisankumar/blogspace/pkg/feed"
	"github.com/murikinatisankumar/blogspace/pkg/handlers"
	"github.com/murikinatisankumar/blogspace/pkg/kv"
	"github.com/murikinatisankumar/blogspace/pkg/notification"
	"github.com/murikinatisankumar/blogspace/pkg/session"
)

func AddHandleFuncs(r *mux.Router, f handlers.FeedHandler, p handlers.ProfileHandler, n handlers.NotificationHandler) {
	r.HandleFunc("/api/login", p.Login).Methods("POST")
	r.HandleFunc("/api/logout", p.Logout).Methods("POST")
	r.HandleFunc("/api/profile", p.GetProfile).Methods("GET")
	r.HandleFunc("/api/profile", p.UpdateProfile).Methods("PUT")
	r.HandleFunc("/api/authors", p.GetAuthors).Methods("GET")
	r.HandleFunc("/api/author/{USERNAME}", p.GetAuthor).Methods("GET")
	r.HandleFunc("/api/author/{ID}/follow", p.ToggleFollow).Methods("POST")
	r.HandleFunc("/api/author/{ID}", p.RemoveAuthor).Methods("DELETE")

	r.HandleFunc("/api/feed", f.GetFeed).Methods("GET")
	r.HandleFunc("/api/posts", f.AddPost).Methods("POST")
	r.HandleFunc("/api/post/{ID}", f.GetPost).Methods("GET")
	r.HandleFunc("/api/post/{ID}", f.DeletePost).Methods("DELETE")
	r.HandleFunc("/api/post/{ID}/like", f.ToggleLike).Methods("POST")
	r.HandleFunc("/api/post/{ID}/bookmark", f.ToggleBookmark).Methods("POST")
	r.HandleFunc("/api/post/{ID}/comments", f.AddComment).Methods("POST")
	r.HandleFunc("/api/post/{ID}/comment/{COMMENT_ID}", f.DeleteComment).Methods("DELETE")
	r.HandleFunc("/api/comment/{COMMENT_ID}/like", f.ToggleCommentLike).Methods("POST")
	r.HandleFunc("/api/user/{USERNAME}", f.GetUserPosts).Methods("GET")

	r.HandleFunc("/api/notifications", n.GetNotifications).Methods("GET")
	r.HandleFunc("/api/notifications/read_all", n.MarkAllRead).Methods("POST")
	r.HandleFunc("/api/notification/{ID}/read", n.MarkRead).Methods("POST")
	r.HandleFunc("/api/notification/{ID}", n.RemoveNotification).Methods("DELETE")
}

func openStore(logger *zap.SugaredLogger) kv.Store {
	dbPath := os.Getenv("BLOGSPACE_DB")
	if dbPath != "" {
		store, err := kv.OpenSQLite(dbPath)
		if err == nil {
			logger.Infow("session store: sqlite", "path", dbPath)
			return store
		}
		logger.Errorw("open sqlite failed, falling back to memory", "error", err)
	}
	logger.Info("session store: memory")
	return kv.NewMemoryStore()
}

func main() {
	godotenv.Load() //nolint:errcheck

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Println("new logger error")
		return
	}
	lg := logger.Sugar()

	store := openStore(lg)
	defer store.Close()

	sm := session.NewSessionsManager(store)
	if err := sm.Restore(); err != nil {
		lg.Errorw("session restore failed", "error", err)
	}

	feedRepo := feed.NewFeedMemoryRepository()
	authorRepo := author.NewAuthorMemRep()
	notificationRepo := notification.NewNotificationMemRep()
	Seed(feedRepo, authorRepo, notificationRepo)

	r := mux.NewRouter()
	f := handlers.FeedHandler{Repo: feedRepo, Logger: lg}
	p := handlers.ProfileHandler{Sessions: sm, Authors: authorRepo, Logger: lg}
	n := handlers.NotificationHandler{Repo: notificationRepo, Logger: lg}
	AddHandleFuncs(r, f, p, n)

	addr := os.Getenv("BLOGSPACE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	mux := middleware.Auth(sm, r)
	lg.Infow("listening", "addr", addr)
	err = http.ListenAndServe(addr, mux)
	if err != nil {
		lg.Errorw("ListenAndServe error", "error", err)
	}
}
