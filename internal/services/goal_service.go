package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dias221467/waseela/internal/metrics"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/pkg/logger"
)

var (
	ErrGoalNotFound      = errors.New("goal not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
)

// GoalService encapsulates the business logic for goals and milestones.
// Every mutation is applied to the store as one unit, after which the
// achievements are re-evaluated.
type GoalService struct {
	store        *repository.Store
	activity     *ActivityService
	achievements *AchievementService
	now          func() time.Time
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(store *repository.Store, activity *ActivityService, achievements *AchievementService) *GoalService {
	return &GoalService{
		store:        store,
		activity:     activity,
		achievements: achievements,
		now:          time.Now,
	}
}

// CreateGoal adds a goal with no milestones.
func (s *GoalService) CreateGoal(ctx context.Context, draft models.GoalDraft) *models.Goal {
	var created models.Goal
	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		snap, created = snap.AddGoal(draft, s.now())
		return snap
	})

	s.afterMutation(ctx, "create_goal", prev, next)
	s.activity.LogActivity(ctx, "goal_created", created.ID, fmt.Sprintf("Created goal: %s", created.Title))

	logger.Log.WithField("goal_id", created.ID).Info("Goal created in service layer")
	return &created
}

// GetGoal retrieves a goal by its ID.
func (s *GoalService) GetGoal(ctx context.Context, id int64) (*models.Goal, error) {
	goal, ok := s.store.Snapshot().FindGoal(id)
	if !ok {
		logger.Log.WithField("goal_id", id).Warn("Goal not found")
		return nil, ErrGoalNotFound
	}
	return &goal, nil
}

// ListGoals returns every goal in creation order.
func (s *GoalService) ListGoals(ctx context.Context) []models.Goal {
	goals := s.store.Snapshot().Goals
	out := make([]models.Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Clone()
	}
	return out
}

// UpdateGoal replaces the stored goal that has the same ID.
func (s *GoalService) UpdateGoal(ctx context.Context, goal models.Goal) (*models.Goal, error) {
	var found bool
	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		snap, found = snap.UpdateGoal(goal)
		return snap
	})
	if !found {
		logger.Log.WithField("goal_id", goal.ID).Warn("Update of unknown goal ignored")
		return nil, ErrGoalNotFound
	}

	s.afterMutation(ctx, "update_goal", prev, next)
	s.activity.LogActivity(ctx, "goal_updated", goal.ID, fmt.Sprintf("Updated goal: %s", goal.Title))

	updated, _ := next.FindGoal(goal.ID)
	logger.Log.WithField("goal_id", goal.ID).Info("Goal updated successfully in service layer")
	return &updated, nil
}

// DeleteGoal removes a goal together with its milestones.
func (s *GoalService) DeleteGoal(ctx context.Context, id int64) error {
	var (
		found   bool
		deleted models.Goal
	)
	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		deleted, _ = snap.FindGoal(id)
		snap, found = snap.DeleteGoal(id)
		return snap
	})
	if !found {
		logger.Log.WithField("goal_id", id).Warn("Delete of unknown goal ignored")
		return ErrGoalNotFound
	}

	s.afterMutation(ctx, "delete_goal", prev, next)
	s.activity.LogActivity(ctx, "goal_deleted", id, fmt.Sprintf("Deleted goal: %s", deleted.Title))

	logger.Log.WithField("goal_id", id).Info("Goal deleted successfully in service layer")
	return nil
}

// ToggleMilestone flips the completion flag of one milestone of a goal.
func (s *GoalService) ToggleMilestone(ctx context.Context, goalID, milestoneID int64) (*models.Goal, error) {
	var found bool
	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		snap, found = snap.ToggleMilestone(goalID, milestoneID)
		return snap
	})
	if !found {
		if _, ok := prev.FindGoal(goalID); !ok {
			return nil, ErrGoalNotFound
		}
		return nil, ErrMilestoneNotFound
	}

	s.afterMutation(ctx, "toggle_milestone", prev, next)
	goal, _ := next.FindGoal(goalID)
	s.activity.LogActivity(ctx, "milestone_toggled", milestoneID, fmt.Sprintf("Toggled milestone in goal: %s", goal.Title))

	return &goal, nil
}

// AddMilestone appends a milestone to a goal. Blank text is silently ignored
// and the goal is returned unchanged.
func (s *GoalService) AddMilestone(ctx context.Context, goalID int64, text string) (*models.Goal, error) {
	var found bool
	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		snap, found = snap.AddMilestone(goalID, text)
		return snap
	})
	if !found {
		return nil, ErrGoalNotFound
	}

	goal, _ := next.FindGoal(goalID)
	before, _ := prev.FindGoal(goalID)
	if len(goal.Milestones) != len(before.Milestones) {
		s.afterMutation(ctx, "add_milestone", prev, next)
		s.activity.LogActivity(ctx, "milestone_added", goalID, fmt.Sprintf("Added milestone to goal: %s", goal.Title))
	}
	return &goal, nil
}

func (s *GoalService) afterMutation(ctx context.Context, op string, prev, next repository.Snapshot) {
	metrics.GoalMutations.WithLabelValues(op).Inc()
	s.achievements.RecordUnlocks(ctx, prev, next)
}
