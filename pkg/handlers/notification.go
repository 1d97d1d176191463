package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/murikinatisankumar/blogspace/pkg/notification"
	"github.com/murikinatisankumar/blogspace/pkg/session"
)

type NotificationHandler struct {
	Repo   notification.NotificationRepo
	Logger *zap.SugaredLogger
}

type NotificationView struct {
	*notification.Notification
	TimeAgo string `json:"timeAgo"`
}

type NotificationListResponse struct {
	Notifications []NotificationView `json:"notifications"`
	Unread        int                `json:"unread"`
}

func (handler *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	all := handler.Repo.GetAllNotifications()
	views := make([]NotificationView, 0, len(all))
	for _, n := range all {
		views = append(views, NotificationView{
			Notification: n,
			TimeAgo:      timeagoLabel(n.CreatedAt),
		})
	}

	err = sendJSON(w, http.StatusOK, NotificationListResponse{
		Notifications: views,
		Unread:        handler.Repo.UnreadCount(),
	})
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("mark notification read")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	notificationID := mux.Vars(r)["ID"]
	n, err := handler.Repo.MarkRead(notificationID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, n)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"notificationID", notificationID)
}

func (handler *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("mark all notifications read")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	handler.Repo.MarkAllRead()

	err = sendJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *NotificationHandler) RemoveNotification(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("remove notification")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	notificationID := mux.Vars(r)["ID"]
	handler.Repo.RemoveNotification(notificationID)

	err = sendJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"notificationID", notificationID)
}
