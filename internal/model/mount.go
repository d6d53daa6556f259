package model

import (
	"sort"
	"strings"

	"github.com/maruel/natural"
)

const (
	MountDevice = "device"
	MountImport = "import"
	MountExport = "export"
)

// Mount is a storage volume or share, the top-level addressable root for
// listings. An export mount aliases a subtree of another mount, reachable
// through Root.
type Mount struct {
	ID          string
	Name        string
	Type        string
	Online      bool
	Permissions Permissions
	Root        *RootMount
	Owner       *User
}

// RootMount is the back-reference an export mount keeps to the mount it
// aliases.
type RootMount struct {
	ID   string
	Name string
	Path string
}

func (m Mount) CanWrite() bool {
	return m.Permissions.Write
}

func (m Mount) CanShare() bool {
	return m.Permissions.CreateLink || m.Permissions.CreateReceiver
}

func mountRank(mountType string) int {
	switch mountType {
	case MountDevice:
		return 0
	case MountImport:
		return 1
	case MountExport:
		return 2
	default:
		return 3
	}
}

// SortMounts orders a mount list the way pickers present it: devices first,
// then imports, then exports, natural name order inside each group.
func SortMounts(mounts []Mount) {
	sort.SliceStable(mounts, func(i, j int) bool {
		ri, rj := mountRank(mounts[i].Type), mountRank(mounts[j].Type)
		if ri != rj {
			return ri < rj
		}
		return natural.Less(strings.ToLower(mounts[i].Name), strings.ToLower(mounts[j].Name))
	})
}
