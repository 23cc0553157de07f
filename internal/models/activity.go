package models

import (
	"time"
)

type Activity struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`      // e.g. "goal_created", "bookmark_toggled"
	TargetID  int64     `json:"target_id"` // the ID of the goal, resource, etc.
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
