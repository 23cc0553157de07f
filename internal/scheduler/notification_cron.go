package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NotificationJobs is the part of the notification service the cron jobs drive.
type NotificationJobs interface {
	CheckGoalDueSoon(ctx context.Context) error
	DeleteExpiredNotifications(ctx context.Context) error
}

// Scheduler wraps the cron runner of the notification jobs.
type Scheduler struct {
	cron *cron.Cron
}

// NewNotificationScheduler registers the due-soon check and the expired
// notification cleanup on the given cron specs.
func NewNotificationScheduler(jobs NotificationJobs, dueSoonSpec, cleanupSpec string) (*Scheduler, error) {
	c := cron.New()

	// Goal due soon
	if _, err := c.AddFunc(dueSoonSpec, func() {
		if err := jobs.CheckGoalDueSoon(context.Background()); err != nil {
			logrus.WithError(err).Error("CheckGoalDueSoon failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid due-soon schedule %q: %w", dueSoonSpec, err)
	}

	// Expired notification cleanup
	if _, err := c.AddFunc(cleanupSpec, func() {
		if err := jobs.DeleteExpiredNotifications(context.Background()); err != nil {
			logrus.WithError(err).Error("DeleteExpiredNotifications failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", cleanupSpec, err)
	}

	return &Scheduler{cron: c}, nil
}

// Entries reports how many jobs are registered.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
