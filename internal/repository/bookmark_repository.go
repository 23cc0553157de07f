package repository

// ToggleBookmark adds the resource id to the bookmark set, or removes it if it
// is already bookmarked.
func (s Snapshot) ToggleBookmark(resourceID int64) Snapshot {
	s.Bookmarks = s.Bookmarks.Toggle(resourceID)
	return s
}
