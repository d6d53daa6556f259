package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// GetMounts lists every mount the user can reach. A malformed entry is
// dropped with a debug log naming the missing fields; the rest of the page
// still comes back.
func (c *Client) GetMounts(ctx context.Context) ([]model.Mount, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v2/mounts", nil, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Mounts []mountResp `json:"mounts"`
	}
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WithMessage(err, "failed to parse mounts")
	}
	mounts := make([]model.Mount, 0, len(resp.Mounts))
	for i := range resp.Mounts {
		m, derr := resp.Mounts[i].decode()
		if derr != nil {
			log.Debugf("[digicloud] dropping mount entry: %v", derr)
			continue
		}
		mounts = append(mounts, m)
	}
	return mounts, nil
}
