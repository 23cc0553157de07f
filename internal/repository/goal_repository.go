package repository

import (
	"strings"
	"time"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/go-openapi/strfmt"
)

// Snapshot is an immutable view of the record store. Mutation methods never
// write to the receiver; they return a new snapshot built from fresh slices.
// Operations on unknown identifiers return the receiver unchanged and report
// false.
type Snapshot struct {
	Goals        []models.Goal        `json:"goals"`
	Bookmarks    models.BookmarkSet   `json:"bookmarks"`
	Achievements []models.Achievement `json:"achievements"`

	nextID int64
}

// NewSnapshot returns an empty snapshot seeded with the given achievements.
func NewSnapshot(seed []models.Achievement) Snapshot {
	achs := make([]models.Achievement, len(seed))
	copy(achs, seed)
	return Snapshot{
		Goals:        []models.Goal{},
		Bookmarks:    models.NewBookmarkSet(),
		Achievements: achs,
		nextID:       1,
	}
}

func (s Snapshot) allocID() (Snapshot, int64) {
	if s.nextID < 1 {
		s.nextID = 1
	}
	id := s.nextID
	s.nextID++
	return s, id
}

// FindGoal returns the goal with the given id.
func (s Snapshot) FindGoal(id int64) (models.Goal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g.Clone(), true
		}
	}
	return models.Goal{}, false
}

// AddGoal appends a new goal with a fresh id and no milestones.
func (s Snapshot) AddGoal(draft models.GoalDraft, now time.Time) (Snapshot, models.Goal) {
	s, id := s.allocID()
	goal := models.Goal{
		ID:            id,
		Title:         draft.Title,
		Measurement:   draft.Measurement,
		Achievability: draft.Achievability,
		Relevance:     draft.Relevance,
		Deadline:      draft.Deadline,
		CreatedAt:     strfmt.DateTime(now.UTC()),
		Milestones:    []models.Milestone{},
	}

	goals := make([]models.Goal, 0, len(s.Goals)+1)
	goals = append(goals, s.Goals...)
	s.Goals = append(goals, goal)
	return s, goal.Clone()
}

// UpdateGoal replaces the goal carrying the same id; a zero CreatedAt keeps
// the stored value. A milestone keeps its id only if the stored goal already
// owns it and no earlier milestone in the update claimed it; every other
// milestone gets a fresh id. Milestones with blank text are dropped.
func (s Snapshot) UpdateGoal(updated models.Goal) (Snapshot, bool) {
	idx := s.goalIndex(updated.ID)
	if idx < 0 {
		return s, false
	}

	owned := make(map[int64]bool, len(s.Goals[idx].Milestones))
	for _, m := range s.Goals[idx].Milestones {
		owned[m.ID] = true
	}

	goal := updated
	if time.Time(goal.CreatedAt).IsZero() {
		goal.CreatedAt = s.Goals[idx].CreatedAt
	}
	goal.Milestones = make([]models.Milestone, 0, len(updated.Milestones))
	for _, m := range updated.Milestones {
		if strings.TrimSpace(m.Text) == "" {
			continue
		}
		if !owned[m.ID] {
			s, m.ID = s.allocID()
		}
		delete(owned, m.ID)
		goal.Milestones = append(goal.Milestones, m)
	}
	return s.replaceGoal(idx, goal), true
}

// DeleteGoal removes the goal and all of its milestones.
func (s Snapshot) DeleteGoal(id int64) (Snapshot, bool) {
	idx := s.goalIndex(id)
	if idx < 0 {
		return s, false
	}
	goals := make([]models.Goal, 0, len(s.Goals)-1)
	goals = append(goals, s.Goals[:idx]...)
	goals = append(goals, s.Goals[idx+1:]...)
	s.Goals = goals
	return s, true
}

// ToggleMilestone flips the completion flag of one milestone.
func (s Snapshot) ToggleMilestone(goalID, milestoneID int64) (Snapshot, bool) {
	idx := s.goalIndex(goalID)
	if idx < 0 {
		return s, false
	}
	goal := s.Goals[idx].Clone()
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == milestoneID {
			goal.Milestones[i].Completed = !goal.Milestones[i].Completed
			return s.replaceGoal(idx, goal), true
		}
	}
	return s, false
}

// AddMilestone appends an incomplete milestone to the goal. Blank text is
// ignored: the snapshot is returned unchanged and found reports whether the
// goal exists.
func (s Snapshot) AddMilestone(goalID int64, text string) (next Snapshot, found bool) {
	idx := s.goalIndex(goalID)
	if idx < 0 {
		return s, false
	}
	if strings.TrimSpace(text) == "" {
		return s, true
	}

	s, id := s.allocID()
	goal := s.Goals[idx].Clone()
	goal.Milestones = append(goal.Milestones, models.Milestone{ID: id, Text: text})
	return s.replaceGoal(idx, goal), true
}

func (s Snapshot) goalIndex(id int64) int {
	for i, g := range s.Goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) replaceGoal(idx int, goal models.Goal) Snapshot {
	goals := make([]models.Goal, len(s.Goals))
	copy(goals, s.Goals)
	goals[idx] = goal
	s.Goals = goals
	return s
}
