package repository

import (
	"context"
	"sync"
	"time"

	"github.com/Dias221467/waseela/internal/models"
)

const defaultActivityLimit = 200

// ActivityRepository keeps the most recent activities in memory.
type ActivityRepository struct {
	mu         sync.Mutex
	activities []models.Activity // oldest first
	limit      int
	nextID     int64
}

func NewActivityRepository(limit int) *ActivityRepository {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return &ActivityRepository{limit: limit, nextID: 1}
}

// CreateActivity stores a new activity log entry, evicting the oldest one when full.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity.ID = r.nextID
	r.nextID++
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	r.activities = append(r.activities, *activity)
	if over := len(r.activities) - r.limit; over > 0 {
		r.activities = append([]models.Activity(nil), r.activities[over:]...)
	}
	return nil
}

// GetActivities returns up to limit activities, newest first.
func (r *ActivityRepository) GetActivities(ctx context.Context, limit int) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.activities) {
		limit = len(r.activities)
	}
	out := make([]models.Activity, 0, limit)
	for i := len(r.activities) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.activities[i])
	}
	return out, nil
}
