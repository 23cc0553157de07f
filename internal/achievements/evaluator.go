// Package achievements decides which badges are unlocked for a snapshot of
// goals and bookmarks.
package achievements

import (
	"github.com/Dias221467/waseela/internal/models"
)

// Fixed achievement identifiers.
const (
	FirstStepID       int64 = 1
	MilestoneMasterID int64 = 2
	GoalGetterID      int64 = 3
	CuriousMindID     int64 = 4
)

// MilestoneMasterThreshold is the number of completed milestones, summed over
// all goals, that unlocks Milestone Master.
const MilestoneMasterThreshold = 5

// Defaults returns the four seeded achievements, all locked.
func Defaults() []models.Achievement {
	return []models.Achievement{
		{ID: FirstStepID, Title: "First Step", Description: "You set your very first goal!", Icon: "target"},
		{ID: MilestoneMasterID, Title: "Milestone Master", Description: "You completed 5 milestones.", Icon: "trophy"},
		{ID: GoalGetterID, Title: "Goal Getter", Description: "You achieved your first goal.", Icon: "sparkles"},
		{ID: CuriousMindID, Title: "Curious Mind", Description: "You bookmarked a resource.", Icon: "book-open"},
	}
}

// Evaluate recomputes every rule from scratch and returns a new achievements
// slice with the same ids and order as current. A rule can only set Unlocked;
// an achievement that is already unlocked in current stays unlocked.
// Achievements with unknown ids are returned unchanged.
func Evaluate(goals []models.Goal, bookmarks models.BookmarkSet, current []models.Achievement) []models.Achievement {
	completed := 0
	achieved := false
	for _, g := range goals {
		completed += g.CompletedMilestones()
		if g.Achieved() {
			achieved = true
		}
	}

	met := map[int64]bool{
		FirstStepID:       len(goals) > 0,
		MilestoneMasterID: completed >= MilestoneMasterThreshold,
		GoalGetterID:      achieved,
		CuriousMindID:     bookmarks.Len() > 0,
	}

	out := make([]models.Achievement, len(current))
	for i, a := range current {
		a.Unlocked = a.Unlocked || met[a.ID]
		out[i] = a
	}
	return out
}

// NewlyUnlocked returns the achievements of next that are unlocked there but
// were locked (or absent) in prev.
func NewlyUnlocked(prev, next []models.Achievement) []models.Achievement {
	was := make(map[int64]bool, len(prev))
	for _, a := range prev {
		was[a.ID] = a.Unlocked
	}
	var out []models.Achievement
	for _, a := range next {
		if a.Unlocked && !was[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
