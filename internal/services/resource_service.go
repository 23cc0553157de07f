package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dias221467/waseela/internal/catalog"
	"github.com/Dias221467/waseela/internal/metrics"
	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/internal/repository"
	"github.com/Dias221467/waseela/pkg/logger"
	"github.com/sirupsen/logrus"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceView is a catalog resource together with its bookmark state.
type ResourceView struct {
	models.Resource
	Bookmarked bool `json:"bookmarked"`
}

type ResourceService struct {
	catalog      *catalog.Catalog
	store        *repository.Store
	activity     *ActivityService
	achievements *AchievementService
}

func NewResourceService(c *catalog.Catalog, store *repository.Store, activity *ActivityService, achievements *AchievementService) *ResourceService {
	return &ResourceService{
		catalog:      c,
		store:        store,
		activity:     activity,
		achievements: achievements,
	}
}

// ListResources returns the catalog, optionally filtered by category.
func (s *ResourceService) ListResources(ctx context.Context, category string) []ResourceView {
	bookmarks := s.store.Snapshot().Bookmarks
	resources := s.catalog.ByCategory(category)
	out := make([]ResourceView, 0, len(resources))
	for _, r := range resources {
		out = append(out, ResourceView{Resource: r, Bookmarked: bookmarks.Has(r.ID)})
	}
	return out
}

// Bookmarks returns the bookmarked resource ids in ascending order.
func (s *ResourceService) Bookmarks(ctx context.Context) []int64 {
	return s.store.Snapshot().Bookmarks.IDs()
}

// ToggleBookmark bookmarks or un-bookmarks a catalog resource and reports
// whether it is bookmarked afterwards.
func (s *ResourceService) ToggleBookmark(ctx context.Context, resourceID int64) (bool, error) {
	resource, ok := s.catalog.Lookup(resourceID)
	if !ok {
		logger.Log.WithField("resource_id", resourceID).Warn("Bookmark toggle for unknown resource ignored")
		return false, ErrResourceNotFound
	}

	prev, next := s.store.Apply(func(snap repository.Snapshot) repository.Snapshot {
		return snap.ToggleBookmark(resourceID)
	})
	bookmarked := next.Bookmarks.Has(resourceID)

	metrics.GoalMutations.WithLabelValues("toggle_bookmark").Inc()
	s.achievements.RecordUnlocks(ctx, prev, next)
	s.activity.LogActivity(ctx, "bookmark_toggled", resourceID, fmt.Sprintf("Bookmark %s: %s", onOff(bookmarked), resource.Title))

	logger.Log.WithFields(logrus.Fields{
		"resource_id": resourceID,
		"bookmarked":  bookmarked,
	}).Info("Bookmark toggled")
	return bookmarked, nil
}

func onOff(b bool) string {
	if b {
		return "added"
	}
	return "removed"
}
