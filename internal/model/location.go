package model

import (
	"strings"

	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// Location identifies where a node lives: a mount plus a slash-delimited
// path. Folder paths always end in '/'. Location is a value type; two
// locations are equal iff the mount id and the exact path string match.
type Location struct {
	MountID string
	Path    string
}

// RootLocation is the top of a mount.
func RootLocation(mountID string) Location {
	return Location{MountID: mountID, Path: "/"}
}

// AppendPathComponent composes a child location without ever doubling the
// separator. Folder children get the trailing '/'.
func (l Location) AppendPathComponent(name string, isFolder bool) Location {
	p := utils.PathAddSeparatorSuffix(l.Path) + name
	if isFolder {
		p += "/"
	}
	return Location{MountID: l.MountID, Path: p}
}

// ParentPath removes the last path component, folder-aware:
// "/docs/sub/" => "/docs/", "/docs/a.txt" => "/docs/", "/" => "/".
func (l Location) ParentPath() string {
	p := strings.TrimSuffix(l.Path, "/")
	if p == "" {
		return "/"
	}
	idx := strings.LastIndex(p, "/")
	return p[:idx+1]
}

func (l Location) Parent() Location {
	return Location{MountID: l.MountID, Path: l.ParentPath()}
}

// Name is the last path component, empty for the root.
func (l Location) Name() string {
	p := strings.TrimSuffix(l.Path, "/")
	idx := strings.LastIndex(p, "/")
	return p[idx+1:]
}

func (l Location) IsRoot() bool {
	return l.Path == "/"
}

func (l Location) IsFolder() bool {
	return strings.HasSuffix(l.Path, "/")
}

// Contains reports whether other sits at or below this location on the same
// mount. It backs the "cannot copy/move a folder into itself" guard.
func (l Location) Contains(other Location) bool {
	if l.MountID != other.MountID {
		return false
	}
	return utils.IsSubPath(l.Path, other.Path)
}

func (l Location) String() string {
	return l.MountID + ":" + l.Path
}
