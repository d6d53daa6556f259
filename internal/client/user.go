package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// GetUser fetches the profile of the token's owner.
func (c *Client) GetUser(ctx context.Context) (model.User, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v2/user", nil, nil)
	if err != nil {
		return model.User{}, err
	}
	var resp userResp
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return model.User{}, errors.WithMessage(err, "failed to parse user")
	}
	return resp.decode()
}
