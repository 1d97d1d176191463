package notification

import "time"

const (
	KindLike    = "like"
	KindComment = "comment"
	KindFollow  = "follow"
	KindMention = "mention"
)

type Actor struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	ID       string `json:"id"`
}

type Notification struct {
	Kind       string    `json:"kind"`
	Actor      Actor     `json:"actor"`
	TargetPost string    `json:"targetPost,omitempty"`
	Snippet    string    `json:"snippet,omitempty"`
	CreatedAt  time.Time `json:"created"`
	IsRead     bool      `json:"isRead"`
	ID         string    `json:"id"`
}

type NotificationRepo interface {
	AddNotification(n *Notification) error
	GetAllNotifications() []*Notification
	UnreadCount() int
	MarkRead(notificationID string) (*Notification, error)
	MarkAllRead()
	RemoveNotification(notificationID string)
}
