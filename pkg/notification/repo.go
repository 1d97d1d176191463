package notification

import (
	"errors"
	"sync"
)

type NotificationMemoryRepository struct {
	data  map[string]*Notification
	order []*Notification
	mu    sync.RWMutex
}

var ErrNotificationNotFound = errors.New("notification not found")
var ErrNotificationAlready = errors.New("notification already exists")

func NewNotificationMemRep() *NotificationMemoryRepository {
	return &NotificationMemoryRepository{
		data:  make(map[string]*Notification),
		order: make([]*Notification, 0),
	}
}

func (repo *NotificationMemoryRepository) AddNotification(n *Notification) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[n.ID]; ok {
		return ErrNotificationAlready
	}
	repo.data[n.ID] = n
	repo.order = append(repo.order, n)
	return nil
}

func (repo *NotificationMemoryRepository) GetAllNotifications() []*Notification {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	notifications := make([]*Notification, len(repo.order))
	copy(notifications, repo.order)
	return notifications
}

func (repo *NotificationMemoryRepository) UnreadCount() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0
	for _, n := range repo.order {
		if !n.IsRead {
			count += 1
		}
	}
	return count
}

// MarkRead only ever flips false to true; re-reading a read notification
// changes nothing.
func (repo *NotificationMemoryRepository) MarkRead(notificationID string) (*Notification, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	n, ok := repo.data[notificationID]
	if !ok {
		return nil, ErrNotificationNotFound
	}
	n.IsRead = true
	return n, nil
}

func (repo *NotificationMemoryRepository) MarkAllRead() {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, n := range repo.order {
		n.IsRead = true
	}
}

// RemoveNotification is idempotent; removing an absent id is not an error.
func (repo *NotificationMemoryRepository) RemoveNotification(notificationID string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.data[notificationID]; !ok {
		return
	}
	delete(repo.data, notificationID)

	index := -1
	for i, n := range repo.order {
		if n.ID == notificationID {
			index = i
			break
		}
	}
	if index != -1 {
		copy(repo.order[index:], repo.order[index+1:])
		repo.order = repo.order[:len(repo.order)-1]
	}
}
