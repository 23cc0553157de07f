package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository()
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	target := int64(7)
	first := &models.Notification{Type: "goal_due_soon", Title: "a", TargetID: &target}
	second := &models.Notification{Type: "achievement_unlocked", Title: "b"}
	require.NoError(t, repo.CreateNotification(ctx, first))
	require.NoError(t, repo.CreateNotification(ctx, second))
	assert.Equal(t, clock.Add(NotificationTTL), first.ExpiresAt)

	list, err := repo.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	latest, err := repo.GetLatestNotificationByType(ctx, "goal_due_soon", target)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, first.ID, latest.ID)

	missing, err := repo.GetLatestNotificationByType(ctx, "goal_due_soon", 8)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.MarkAsRead(ctx, first.ID))
	list, _ = repo.GetNotifications(ctx)
	assert.True(t, list[1].Read)

	require.NoError(t, repo.DeleteNotification(ctx, second.ID))
	assert.ErrorIs(t, repo.DeleteNotification(ctx, second.ID), ErrNotificationNotFound)
	assert.ErrorIs(t, repo.MarkAsRead(ctx, 42), ErrNotificationNotFound)
}

func TestNotificationRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := NewNotificationRepository()
	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }

	require.NoError(t, repo.CreateNotification(ctx, &models.Notification{Type: "old"}))
	clock = clock.Add(NotificationTTL - time.Hour)
	require.NoError(t, repo.CreateNotification(ctx, &models.Notification{Type: "new"}))
	clock = clock.Add(2 * time.Hour)

	list, err := repo.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Type)

	deleted, err := repo.DeleteExpiredNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}

func TestActivityRepository_KeepsNewestWithinLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository(3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.CreateActivity(ctx, &models.Activity{Type: "goal_created", TargetID: int64(i)}))
	}

	all, err := repo.GetActivities(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(5), all[0].TargetID)
	assert.Equal(t, int64(3), all[2].TargetID)

	two, _ := repo.GetActivities(ctx, 2)
	assert.Len(t, two, 2)
}
