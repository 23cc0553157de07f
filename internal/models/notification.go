package models

import (
	"time"
)

type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`                // e.g. "achievement_unlocked", "goal_due_soon"
	Title     string    `json:"title"`               // Short headline
	Message   string    `json:"message"`             // Descriptive content
	Read      bool      `json:"read"`                // True if user viewed it
	TargetID  *int64    `json:"target_id,omitempty"` // Optional reference to goal/achievement
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"` // For auto-deletion after 7 days
}
