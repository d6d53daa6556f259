package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

const apiBookmarks = "/api/v2/user/bookmarks"

// GetBookmarks fetches the full bookmark list.
func (c *Client) GetBookmarks(ctx context.Context) ([]model.Bookmark, error) {
	body, err := c.do(ctx, http.MethodGet, apiBookmarks, nil, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Bookmarks []model.Bookmark `json:"bookmarks"`
	}
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return nil, errors.WithMessage(err, "failed to parse bookmarks")
	}
	return resp.Bookmarks, nil
}

// SetBookmarks replaces the whole bookmark list. Add and remove are
// implemented as fetch, edit, replace — the API has no partial update.
func (c *Client) SetBookmarks(ctx context.Context, bookmarks []model.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	_, err := c.do(ctx, http.MethodPut, apiBookmarks, nil, func(req *resty.Request) {
		jsonBody(req, map[string]any{"bookmarks": bookmarks})
	})
	return err
}
