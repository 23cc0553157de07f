package services

import (
	"context"
	"fmt"

	"github.com/Dias221467/waseela/internal/achievements"
	"github.com/Dias221467/waseela/internal/metrics"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/pkg/logger"
)

// AchievementService exposes badges and reacts to ones that were just unlocked.
type AchievementService struct {
	store         *repository.Store
	activity      *ActivityService
	notifications *NotificationService
}

func NewAchievementService(store *repository.Store, activity *ActivityService, notifications *NotificationService) *AchievementService {
	return &AchievementService{
		store:         store,
		activity:      activity,
		notifications: notifications,
	}
}

// ListAchievements returns the current badges in their fixed order.
func (s *AchievementService) ListAchievements(ctx context.Context) []models.Achievement {
	current := s.store.Snapshot().Achievements
	out := make([]models.Achievement, len(current))
	copy(out, current)
	return out
}

// RecordUnlocks logs, counts and notifies every achievement that is unlocked
// in next but was not in prev.
func (s *AchievementService) RecordUnlocks(ctx context.Context, prev, next repository.Snapshot) {
	for _, a := range achievements.NewlyUnlocked(prev.Achievements, next.Achievements) {
		metrics.AchievementsUnlocked.WithLabelValues(a.Title).Inc()
		logger.Log.WithField("achievement", a.Title).Info("Achievement unlocked")

		s.activity.LogActivity(ctx, "achievement_unlocked", a.ID, fmt.Sprintf("Unlocked achievement: %s", a.Title))

		achID := a.ID
		if err := s.notifications.CreateNotification(ctx, NotificationAchievementUnlocked, "🏆 "+a.Title, a.Description, &achID); err != nil {
			logger.Log.WithError(err).Warn("Failed to send achievement notification")
		}
	}
}
