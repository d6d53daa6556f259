package model

// Bookmark is a user-saved shortcut into a location. The full bookmark list
// is fetched and replaced as a whole; single entries are added or removed,
// never patched.
type Bookmark struct {
	Name    string `json:"name"`
	MountID string `json:"mountId"`
	Path    string `json:"path"`
}

func (b Bookmark) Location() Location {
	return Location{MountID: b.MountID, Path: b.Path}
}
