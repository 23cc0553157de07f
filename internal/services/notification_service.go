package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/pkg/logger"
)

const (
	NotificationAchievementUnlocked = "achievement_unlocked"
	NotificationGoalDueSoon         = "goal_due_soon"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Publisher receives every notification after it is stored.
type Publisher interface {
	Publish(n models.Notification)
}

type NotificationService struct {
	repo      *repository.NotificationRepository
	store     *repository.Store
	publisher Publisher
	window    time.Duration
	now       func() time.Time
}

// NewNotificationService creates the service. publisher may be nil.
func NewNotificationService(repo *repository.NotificationRepository, store *repository.Store, publisher Publisher, dueSoonWindow time.Duration) *NotificationService {
	if dueSoonWindow <= 0 {
		dueSoonWindow = 24 * time.Hour
	}
	return &NotificationService{
		repo:      repo,
		store:     store,
		publisher: publisher,
		window:    dueSoonWindow,
		now:       time.Now,
	}
}

// CreateNotification stores a notification and publishes it
func (s *NotificationService) CreateNotification(ctx context.Context, notifType, title, message string, targetID *int64) error {
	notif := &models.Notification{
		Type:     notifType,
		Title:    title,
		Message:  message,
		TargetID: targetID,
	}
	if err := s.repo.CreateNotification(ctx, notif); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	if s.publisher != nil {
		s.publisher.Publish(*notif)
	}
	return nil
}

// GetNotifications returns all unexpired notifications, newest first
func (s *NotificationService) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	return s.repo.GetNotifications(ctx)
}

// MarkNotificationAsRead sets the "read" status of a notification to true
func (s *NotificationService) MarkNotificationAsRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

// DeleteNotification deletes a specific notification
func (s *NotificationService) DeleteNotification(ctx context.Context, id int64) error {
	if err := s.repo.DeleteNotification(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationService) DeleteExpiredNotifications(ctx context.Context) error {
	if _, err := s.repo.DeleteExpiredNotifications(ctx); err != nil {
		return fmt.Errorf("failed to delete expired notifications: %w", err)
	}
	return nil
}

// CheckGoalDueSoon notifies about unachieved goals whose deadline day ends
// within the configured window. Each goal is notified at most once.
func (s *NotificationService) CheckGoalDueSoon(ctx context.Context) error {
	now := s.now()
	for _, goal := range s.store.Snapshot().Goals {
		deadline := time.Time(goal.Deadline)
		if goal.Achieved() || deadline.IsZero() {
			continue
		}

		timeLeft := deadline.Add(24 * time.Hour).Sub(now)
		if timeLeft <= 0 || timeLeft > s.window {
			continue
		}

		existing, err := s.repo.GetLatestNotificationByType(ctx, NotificationGoalDueSoon, goal.ID)
		if err == nil && existing != nil {
			continue
		}

		goalID := goal.ID
		message := fmt.Sprintf("Goal \"%s\" is due on %s. Don't forget to complete it.", goal.Title, goal.Deadline.String())
		if err := s.CreateNotification(ctx, NotificationGoalDueSoon, "⏰ Goal Due Soon", message, &goalID); err != nil {
			logger.Log.WithError(err).WithField("goal_id", goal.ID).Warn("Failed to send goal due soon notification")
		}
	}
	return nil
}
