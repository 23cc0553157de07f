package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/pkg/logger"
)

// NotificationTTL is how long a notification is kept before it expires.
const NotificationTTL = 7 * 24 * time.Hour

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository struct {
	mu            sync.Mutex
	notifications []models.Notification // oldest first
	nextID        int64
	now           func() time.Time
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{nextID: 1, now: time.Now}
}

// CreateNotification stores a new notification and fills in its id and timestamps.
func (r *NotificationRepository) CreateNotification(ctx context.Context, notif *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notif.ID = r.nextID
	r.nextID++
	notif.CreatedAt = r.now()
	notif.ExpiresAt = notif.CreatedAt.Add(NotificationTTL)

	r.notifications = append(r.notifications, *notif)
	return nil
}

// GetNotifications returns all unexpired notifications, newest first.
func (r *NotificationRepository) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	out := make([]models.Notification, 0, len(r.notifications))
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].ExpiresAt.After(now) {
			out = append(out, r.notifications[i])
		}
	}
	return out, nil
}

// MarkAsRead sets notification's Read to true
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

// DeleteNotification deletes a notification
func (r *NotificationRepository) DeleteNotification(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications = append(r.notifications[:i:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return ErrNotificationNotFound
}

// GetLatestNotificationByType returns the newest notification of the given
// type that refers to targetID, or nil if there is none.
func (r *NotificationRepository) GetLatestNotificationByType(ctx context.Context, notifType string, targetID int64) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if n.Type == notifType && n.TargetID != nil && *n.TargetID == targetID {
			return &n, nil
		}
	}
	return nil, nil
}

// DeleteExpiredNotifications drops every notification whose expiry has passed.
func (r *NotificationRepository) DeleteExpiredNotifications(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	kept := r.notifications[:0:0]
	for _, n := range r.notifications {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	deleted := len(r.notifications) - len(kept)
	r.notifications = kept

	logger.Log.Infof("Deleted %d expired notifications", deleted)
	return deleted, nil
}
