package models

import (
	"github.com/go-openapi/strfmt"
)

// Milestone is a sub-task of a goal. It is owned by exactly one goal.
type Milestone struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Goal is a SMART-framed objective with an ordered list of milestones.
type Goal struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`         // Specific
	Measurement   string          `json:"measurement"`   // Measurable
	Achievability string          `json:"achievability"` // Achievable
	Relevance     string          `json:"relevance"`     // Relevant
	Deadline      strfmt.Date     `json:"deadline"`      // Time-bound
	CreatedAt     strfmt.DateTime `json:"created_at"`
	Milestones    []Milestone     `json:"milestones"`
}

// GoalDraft holds the user-supplied fields of a goal.
type GoalDraft struct {
	Title         string      `json:"title" validate:"required,max=200"`
	Measurement   string      `json:"measurement" validate:"max=500"`
	Achievability string      `json:"achievability" validate:"max=500"`
	Relevance     string      `json:"relevance" validate:"max=500"`
	Deadline      strfmt.Date `json:"deadline"`
}

// Achieved reports whether the goal has milestones and all of them are completed.
// A goal without milestones is never achieved.
func (g Goal) Achieved() bool {
	if len(g.Milestones) == 0 {
		return false
	}
	for _, m := range g.Milestones {
		if !m.Completed {
			return false
		}
	}
	return true
}

// CompletedMilestones counts the completed milestones of the goal.
func (g Goal) CompletedMilestones() int {
	n := 0
	for _, m := range g.Milestones {
		if m.Completed {
			n++
		}
	}
	return n
}

// Clone returns a copy of the goal that shares no memory with the receiver.
func (g Goal) Clone() Goal {
	out := g
	out.Milestones = make([]Milestone, len(g.Milestones))
	copy(out.Milestones, g.Milestones)
	return out
}
