package models

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// GoalSuggestion is what the goal-suggestion assistant returns.
type GoalSuggestion struct {
	Specific      string `json:"specific"`
	Measurable    string `json:"measurable"`
	Achievable    string `json:"achievable"`
	Relevant      string `json:"relevant"`
	TimeBoundDays int    `json:"timeBoundDays"`
}

// Draft converts the suggestion into a goal draft whose deadline is
// TimeBoundDays calendar days after now.
func (s GoalSuggestion) Draft(now time.Time) GoalDraft {
	y, m, d := now.Date()
	deadline := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, s.TimeBoundDays)
	return GoalDraft{
		Title:         s.Specific,
		Measurement:   s.Measurable,
		Achievability: s.Achievable,
		Relevance:     s.Relevant,
		Deadline:      strfmt.Date(deadline),
	}
}
