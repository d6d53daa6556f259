package model

import (
	"time"

	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// Node is a single file or folder entry inside a mount. Nodes are decoded
// fresh on every listing fetch; re-fetching a folder produces brand-new
// values with no long-lived identity.
type Node struct {
	Name        string
	IsFolder    bool
	Modified    time.Time
	Size        int64
	ContentType string
	Hash        string
	// set when this node is itself a share root
	Mount    *Mount
	Link     *Link
	Receiver *Receiver
	Bookmark *Bookmark
}

// Ext is the lowercase extension derived from the name, without the dot.
func (n Node) Ext() string {
	if n.IsFolder {
		return ""
	}
	return utils.Ext(n.Name)
}

// Location composes the node's own location from its parent's.
func (n Node) Location(parent Location) Location {
	return parent.AppendPathComponent(n.Name, n.IsFolder)
}
