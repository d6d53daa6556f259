package fs

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/client"
	"github.com/DigiCloudTeam/digicloud/internal/model"
)

// List fetches a folder bundle and sorts the children per the configured
// preference. refresh bypasses the TTL cache.
func (s *Service) List(ctx context.Context, loc model.Location, refresh bool) (client.FolderBundle, error) {
	key := listingKey(loc)
	if s.listings != nil && !refresh {
		if bundle, ok := s.listings.Get(key); ok {
			log.Debugf("[digicloud] listing cache hit for %s", loc)
			return bundle, nil
		}
	}
	bundle, err := s.client.ListFolder(ctx, loc)
	if err != nil {
		return client.FolderBundle{}, err
	}
	sortCfg := s.cfg.Sort
	model.SortNodes(bundle.Children, sortCfg.By, sortCfg.Direction, sortCfg.FoldersFirst)
	if s.listings != nil {
		s.listings.Set(key, bundle)
	}
	return bundle, nil
}

// ListWritable filters a listing down to folders, for destination picking;
// the caller has already checked the mount's write permission.
func ListWritable(bundle client.FolderBundle) []model.Node {
	folders := make([]model.Node, 0, len(bundle.Children))
	for _, n := range bundle.Children {
		if n.IsFolder {
			folders = append(folders, n)
		}
	}
	return folders
}
