package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// FolderBundle is the combined metadata+children response of /files/list.
type FolderBundle struct {
	Root     model.Node
	Children []model.Node
}

// ListFolder fetches a folder's own metadata together with its children in
// one round trip. Malformed child entries are dropped with a debug log.
func (c *Client) ListFolder(ctx context.Context, loc model.Location) (FolderBundle, error) {
	body, err := c.do(ctx, http.MethodGet, apiMountPath(loc.MountID, "list"),
		map[string]string{"path": loc.Path}, nil)
	if err != nil {
		return FolderBundle{}, err
	}
	var resp struct {
		File  *nodeResp  `json:"file"`
		Files []nodeResp `json:"files"`
	}
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return FolderBundle{}, errors.WithMessage(err, "failed to parse listing")
	}
	var bundle FolderBundle
	if resp.File != nil {
		root, derr := resp.File.decode()
		if derr != nil {
			return FolderBundle{}, derr
		}
		bundle.Root = root
	}
	bundle.Children = make([]model.Node, 0, len(resp.Files))
	for i := range resp.Files {
		n, derr := resp.Files[i].decode()
		if derr != nil {
			log.Debugf("[digicloud] dropping listing entry at %s: %v", loc, derr)
			continue
		}
		bundle.Children = append(bundle.Children, n)
	}
	return bundle, nil
}

// GetTree fetches the recursive folder tree, used for folder-info size
// calculation.
func (c *Client) GetTree(ctx context.Context, loc model.Location) (TreeNode, error) {
	body, err := c.do(ctx, http.MethodGet, apiMountPath(loc.MountID, "tree"),
		map[string]string{"path": loc.Path}, nil)
	if err != nil {
		return TreeNode{}, err
	}
	var resp treeResp
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return TreeNode{}, errors.WithMessage(err, "failed to parse tree")
	}
	return resp.decode()
}

// DownloadURL composes the direct download URL for a file. The caller still
// sends the Authorization header when fetching it.
func (c *Client) DownloadURL(loc model.Location) string {
	return c.base + apiMountPath(loc.MountID, "get") + "?" + utils.EncodeQuery(map[string]string{"path": loc.Path})
}

// Rename changes a node's name in place. Returns the HTTP status so batch
// callers can classify per-item outcomes.
func (c *Client) Rename(ctx context.Context, loc model.Location, newName string) (int, error) {
	return c.statusOp(ctx, http.MethodPut, apiMountPath(loc.MountID, "rename"),
		map[string]string{"path": loc.Path}, map[string]string{"name": newName})
}

// Remove deletes a node.
func (c *Client) Remove(ctx context.Context, loc model.Location) (int, error) {
	return c.statusOp(ctx, http.MethodDelete, apiMountPath(loc.MountID, "remove"),
		map[string]string{"path": loc.Path}, nil)
}

// MakeDir creates a folder under parent.
func (c *Client) MakeDir(ctx context.Context, parent model.Location, name string) (int, error) {
	return c.statusOp(ctx, http.MethodPost, apiMountPath(parent.MountID, "folder"),
		map[string]string{"path": parent.Path}, map[string]string{"name": name})
}

// Copy copies src into the destination mount/path. dst carries the full new
// location including the target name.
func (c *Client) Copy(ctx context.Context, src, dst model.Location) (int, error) {
	return c.statusOp(ctx, http.MethodPut, apiMountPath(src.MountID, "copy"),
		map[string]string{"path": src.Path},
		map[string]string{"toMountId": dst.MountID, "toPath": dst.Path})
}

// Move moves src into the destination mount/path.
func (c *Client) Move(ctx context.Context, src, dst model.Location) (int, error) {
	return c.statusOp(ctx, http.MethodPut, apiMountPath(src.MountID, "move"),
		map[string]string{"path": src.Path},
		map[string]string{"toMountId": dst.MountID, "toPath": dst.Path})
}

// statusOp issues a mutating call and hands back the raw status. A transport
// failure reports status 0 with the network error; HTTP statuses come back
// verbatim with no error so callers can branch on known codes.
func (c *Client) statusOp(ctx context.Context, method, api string, query map[string]string, body any) (int, error) {
	_, code, err := c.request(ctx, method, api, query, func(req *resty.Request) {
		if body != nil {
			jsonBody(req, body)
		}
	})
	return code, err
}

// Search queries the index, either across all mounts (scope nil) or scoped
// to one location.
func (c *Client) Search(ctx context.Context, query string, scope *model.Location) ([]SearchHit, error) {
	params := map[string]string{"query": query}
	if scope != nil {
		params["mountId"] = scope.MountID
		params["path"] = scope.Path
	}
	body, err := c.do(ctx, http.MethodGet, "/api/v2/search", params, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Hits []searchHitResp `json:"hits"`
	}
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WithMessage(err, "failed to parse search results")
	}
	hits := make([]SearchHit, 0, len(resp.Hits))
	for i := range resp.Hits {
		h, derr := resp.Hits[i].decode()
		if derr != nil {
			log.Debugf("[digicloud] dropping search hit: %v", derr)
			continue
		}
		hits = append(hits, h)
	}
	return hits, nil
}
