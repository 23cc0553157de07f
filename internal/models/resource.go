package models

import (
	"encoding/json"
	"sort"
)

// Resource categories.
const (
	CategoryCareer    = "Career"
	CategoryHealth    = "Health"
	CategoryEducation = "Education"
	CategoryPersonal  = "Personal"
)

// Resource types.
const (
	TypeArticle = "Article"
	TypeVideo   = "Video"
	TypePodcast = "Podcast"
)

// Resource is a read-only catalog entry.
type Resource struct {
	ID          int64  `json:"id" yaml:"id" validate:"required,gt=0"`
	Title       string `json:"title" yaml:"title" validate:"required"`
	Category    string `json:"category" yaml:"category" validate:"required,oneof=Career Health Education Personal"`
	Type        string `json:"type" yaml:"type" validate:"required,oneof=Article Video Podcast"`
	Link        string `json:"link" yaml:"link" validate:"required"`
	Description string `json:"description" yaml:"description"`
}

// BookmarkSet is an immutable set of resource ids. The zero value is an empty set.
type BookmarkSet struct {
	ids map[int64]struct{}
}

func NewBookmarkSet(ids ...int64) BookmarkSet {
	m := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return BookmarkSet{ids: m}
}

func (b BookmarkSet) Has(id int64) bool {
	_, ok := b.ids[id]
	return ok
}

func (b BookmarkSet) Len() int { return len(b.ids) }

// IDs returns the bookmarked ids in ascending order.
func (b BookmarkSet) IDs() []int64 {
	out := make([]int64, 0, len(b.ids))
	for id := range b.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Toggle returns a new set with id added if absent, removed if present.
func (b BookmarkSet) Toggle(id int64) BookmarkSet {
	m := make(map[int64]struct{}, len(b.ids)+1)
	for k := range b.ids {
		m[k] = struct{}{}
	}
	if _, ok := m[id]; ok {
		delete(m, id)
	} else {
		m[id] = struct{}{}
	}
	return BookmarkSet{ids: m}
}

func (b BookmarkSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.IDs())
}

func (b *BookmarkSet) UnmarshalJSON(data []byte) error {
	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*b = NewBookmarkSet(ids...)
	return nil
}
