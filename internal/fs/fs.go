// Package fs drives the multi-step flows on top of the API client: folder
// listing with sort preferences, batch copy/move/delete with aggregate
// reporting, rename, bookmarks, and share-link lifecycle.
package fs

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/internal/cache"
	"github.com/DigiCloudTeam/digicloud/internal/client"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
)

type Service struct {
	client   *client.Client
	cfg      *conf.Config
	listings *cache.KeyedCache[client.FolderBundle]
}

func NewService(c *client.Client, cfg *conf.Config) *Service {
	s := &Service{client: c, cfg: cfg}
	if cfg.CacheTTL > 0 {
		s.listings = cache.NewKeyedCache[client.FolderBundle](time.Duration(cfg.CacheTTL) * time.Minute)
	}
	return s
}

// Client exposes the underlying API client for flows the service does not
// wrap.
func (s *Service) Client() *client.Client {
	return s.client
}

// MakeDir validates the folder name locally, then creates it. A 400 from
// the server still comes back as a conflict error.
func (s *Service) MakeDir(ctx context.Context, parent model.Location, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	code, err := s.client.MakeDir(ctx, parent, name)
	if err != nil {
		return err
	}
	if serr := errs.FromStatusCode(code); serr != nil {
		return errors.WithMessagef(serr, "mkdir %q in %s", name, parent)
	}
	s.invalidate(parent)
	return nil
}

// Rename changes the node's name in place. A 404 means the node is gone and
// the view is stale.
func (s *Service) Rename(ctx context.Context, loc model.Location, newName string) error {
	if err := ValidateName(newName); err != nil {
		return err
	}
	code, err := s.client.Rename(ctx, loc, newName)
	if err != nil {
		return err
	}
	if serr := errs.FromStatusCode(code); serr != nil {
		return errors.WithMessagef(serr, "rename %s to %q", loc, newName)
	}
	s.invalidate(loc.Parent())
	return nil
}

// FolderInfo sums a folder subtree: total byte size, file and folder counts.
type FolderInfo struct {
	Size    int64
	Files   int
	Folders int
}

// Info walks the recursive tree response of a folder.
func (s *Service) Info(ctx context.Context, loc model.Location) (FolderInfo, error) {
	tree, err := s.client.GetTree(ctx, loc)
	if err != nil {
		return FolderInfo{}, err
	}
	var info FolderInfo
	walkTree(tree, &info)
	// the root folder itself is not part of its own counts
	if tree.Node.IsFolder && info.Folders > 0 {
		info.Folders--
	}
	return info, nil
}

func walkTree(t client.TreeNode, info *FolderInfo) {
	if t.Node.IsFolder {
		info.Folders++
	} else {
		info.Files++
		info.Size += t.Node.Size
	}
	for _, child := range t.Children {
		walkTree(child, info)
	}
}

// Search queries the index, globally or scoped under one location.
func (s *Service) Search(ctx context.Context, query string, scope *model.Location) ([]client.SearchHit, error) {
	return s.client.Search(ctx, query, scope)
}

// ValidateName rejects names the server would refuse anyway, before any
// network call.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errs.NewErr(errs.InvalidName, "name is empty")
	case name == "." || name == "..":
		return errs.NewErr(errs.InvalidName, "%q is reserved", name)
	case strings.ContainsAny(name, "/\\"):
		return errs.NewErr(errs.InvalidName, "%q contains a path separator", name)
	}
	return nil
}

func (s *Service) invalidate(folder model.Location) {
	if s.listings == nil {
		return
	}
	s.listings.DeletePrefix(listingKey(folder))
}

func listingKey(loc model.Location) string {
	return loc.MountID + ":" + loc.Path
}
