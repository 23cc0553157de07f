package services

import (
	"context"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ActivityService struct {
	repo *repository.ActivityRepository
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// LogActivity records something the user did. The feed is best-effort:
// failures are logged, not returned.
func (s *ActivityService) LogActivity(ctx context.Context, actionType string, targetID int64, message string) {
	activity := &models.Activity{
		Type:      actionType,
		TargetID:  targetID,
		Message:   message,
		Timestamp: time.Now(),
	}

	if err := s.repo.CreateActivity(ctx, activity); err != nil {
		logger.Log.WithError(err).Error("Failed to log activity in service")
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"target_id":   targetID,
		"action_type": actionType,
	}).Debug("Activity logged successfully")
}

// GetRecentActivities returns the latest actions, newest first
func (s *ActivityService) GetRecentActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	return s.repo.GetActivities(ctx, limit)
}
