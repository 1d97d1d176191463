package middleware

import (
	"net/http"

	"github.com/murikinatisankumar/blogspace/pkg/session"
)

var noAuthUrls = map[string]string{
	"/api/login":   "POST",
	"/api/feed":    "GET",
	"/api/authors": "GET",
}

func Auth(sm *session.Manager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if val, ok := noAuthUrls[r.URL.Path]; ok && val == r.Method {
			next.ServeHTTP(w, r)
			return
		}

		sess, _ := sm.CheckSession(r) //nolint:errcheck

		ctx := session.CreateContextWithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
