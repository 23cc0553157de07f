package models

// Achievement is a badge unlocked by goal and bookmark activity.
// Unlocked only ever moves from false to true.
type Achievement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
	Icon        string `json:"icon"`
}
