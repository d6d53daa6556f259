package model

import (
	"sort"
	"strings"

	"github.com/DigiCloudTeam/digicloud/internal/conf"
	"github.com/maruel/natural"
)

// SortNodes orders a listing in place with a stable two-key comparator:
// primary key = the chosen field, tie-break = node type when foldersFirst is
// set. Folders precede files whenever foldersFirst is on, regardless of
// field and direction. Sorting the same listing twice yields the same order.
func SortNodes(nodes []Node, by, direction string, foldersFirst bool) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if foldersFirst && a.IsFolder != b.IsFolder {
			return a.IsFolder
		}
		less, equal := compareField(a, b, by)
		if equal {
			// keep the order total so repeated sorts agree
			return nameLess(a.Name, b.Name)
		}
		if direction == conf.DirectionDesc {
			return !less
		}
		return less
	})
}

func compareField(a, b Node, by string) (less, equal bool) {
	switch by {
	case conf.SortByDate:
		if a.Modified.Equal(b.Modified) {
			return false, true
		}
		return a.Modified.Before(b.Modified), false
	case conf.SortBySize:
		if a.Size == b.Size {
			return false, true
		}
		return a.Size < b.Size, false
	case conf.SortByContentType:
		if a.ContentType == b.ContentType {
			return false, true
		}
		return a.ContentType < b.ContentType, false
	default: // conf.SortByName
		an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if an == bn {
			return false, true
		}
		return natural.Less(an, bn), false
	}
}

func nameLess(a, b string) bool {
	return natural.Less(strings.ToLower(a), strings.ToLower(b))
}
