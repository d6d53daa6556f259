package fs

import (
	"context"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// ToggleBookmark adds a bookmark for loc when none exists, otherwise removes
// the existing one. The API only replaces the full list, so toggle is
// fetch-edit-replace. Returns whether the location is bookmarked afterwards.
func (s *Service) ToggleBookmark(ctx context.Context, name string, loc model.Location) (bool, error) {
	bookmarks, err := s.client.GetBookmarks(ctx)
	if err != nil {
		return false, err
	}
	kept := bookmarks[:0]
	removed := false
	for _, b := range bookmarks {
		// the server may hand paths back without the trailing slash
		if b.MountID == loc.MountID && utils.PathEqual(b.Path, loc.Path) {
			removed = true
			continue
		}
		kept = append(kept, b)
	}
	if !removed {
		kept = append(kept, model.Bookmark{Name: name, MountID: loc.MountID, Path: loc.Path})
	}
	if err := s.client.SetBookmarks(ctx, kept); err != nil {
		return removed, err
	}
	return !removed, nil
}
