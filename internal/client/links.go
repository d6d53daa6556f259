package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// The two share kinds live under the same URL shape:
// /api/v2/mounts/{mountId}/{links|receivers}[/{id}/...]. Every mutating call
// returns the full replacement object, which the caller adopts wholesale.
const (
	kindLinks     = "links"
	kindReceivers = "receivers"
)

func apiShare(mountID, kind string, parts ...string) string {
	p := fmt.Sprintf("/api/v2/mounts/%s/%s", mountID, kind)
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

func (c *Client) shareOp(ctx context.Context, method, api string, body any) ([]byte, error) {
	return c.do(ctx, method, api, nil, func(req *resty.Request) {
		if body != nil {
			jsonBody(req, body)
		}
	})
}

func decodeLink(body []byte) (model.Link, error) {
	var resp linkResp
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return model.Link{}, errors.WithMessage(err, "failed to parse link")
	}
	return resp.decode()
}

func decodeReceiver(body []byte) (model.Receiver, error) {
	var resp receiverResp
	if err := utils.Json.Unmarshal(body, &resp); err != nil {
		return model.Receiver{}, errors.WithMessage(err, "failed to parse receiver")
	}
	return resp.decode()
}

// CreateLink fetches or creates the download link for the node at loc.
func (c *Client) CreateLink(ctx context.Context, loc model.Location) (model.Link, error) {
	body, err := c.shareOp(ctx, http.MethodPost, apiShare(loc.MountID, kindLinks),
		map[string]string{"path": loc.Path})
	if err != nil {
		return model.Link{}, err
	}
	return decodeLink(body)
}

// CreateReceiver fetches or creates the upload receiver for the folder at loc.
func (c *Client) CreateReceiver(ctx context.Context, loc model.Location) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodPost, apiShare(loc.MountID, kindReceivers),
		map[string]string{"path": loc.Path})
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

// DeleteLink revokes a download link.
func (c *Client) DeleteLink(ctx context.Context, mountID, linkID string) error {
	_, err := c.shareOp(ctx, http.MethodDelete, apiShare(mountID, kindLinks, linkID), nil)
	return err
}

// DeleteReceiver revokes an upload receiver.
func (c *Client) DeleteReceiver(ctx context.Context, mountID, receiverID string) error {
	_, err := c.shareOp(ctx, http.MethodDelete, apiShare(mountID, kindReceivers, receiverID), nil)
	return err
}

// ResetLinkPassword asks the server to generate a fresh password.
func (c *Client) ResetLinkPassword(ctx context.Context, mountID, linkID string) (model.Link, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindLinks, linkID, "password", "reset"), nil)
	if err != nil {
		return model.Link{}, err
	}
	return decodeLink(body)
}

// RemoveLinkPassword turns password protection off.
func (c *Client) RemoveLinkPassword(ctx context.Context, mountID, linkID string) (model.Link, error) {
	body, err := c.shareOp(ctx, http.MethodDelete, apiShare(mountID, kindLinks, linkID, "password"), nil)
	if err != nil {
		return model.Link{}, err
	}
	return decodeLink(body)
}

// SetLinkHash customizes the short-URL suffix. 400 means the hash is taken
// or invalid.
func (c *Client) SetLinkHash(ctx context.Context, mountID, linkID, hash string) (model.Link, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindLinks, linkID, "urlHash"),
		map[string]string{"hash": hash})
	if err != nil {
		return model.Link{}, err
	}
	return decodeLink(body)
}

// SetLinkValidity sets or clears the validity window; nil on both ends
// removes it.
func (c *Client) SetLinkValidity(ctx context.Context, mountID, linkID string, from, to *time.Time) (model.Link, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindLinks, linkID, "validity"),
		validityBody(from, to))
	if err != nil {
		return model.Link{}, err
	}
	return decodeLink(body)
}

// ResetReceiverPassword asks the server to generate a fresh password.
func (c *Client) ResetReceiverPassword(ctx context.Context, mountID, receiverID string) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindReceivers, receiverID, "password", "reset"), nil)
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

// RemoveReceiverPassword turns password protection off.
func (c *Client) RemoveReceiverPassword(ctx context.Context, mountID, receiverID string) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodDelete, apiShare(mountID, kindReceivers, receiverID, "password"), nil)
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

// SetReceiverHash customizes the short-URL suffix.
func (c *Client) SetReceiverHash(ctx context.Context, mountID, receiverID, hash string) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindReceivers, receiverID, "urlHash"),
		map[string]string{"hash": hash})
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

// SetReceiverValidity sets or clears the validity window.
func (c *Client) SetReceiverValidity(ctx context.Context, mountID, receiverID string, from, to *time.Time) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindReceivers, receiverID, "validity"),
		validityBody(from, to))
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

// SetReceiverAlert toggles the email notification on upload.
func (c *Client) SetReceiverAlert(ctx context.Context, mountID, receiverID string, alert bool) (model.Receiver, error) {
	body, err := c.shareOp(ctx, http.MethodPut, apiShare(mountID, kindReceivers, receiverID, "alert"),
		map[string]bool{"alert": alert})
	if err != nil {
		return model.Receiver{}, err
	}
	return decodeReceiver(body)
}

func validityBody(from, to *time.Time) map[string]any {
	body := map[string]any{"validFrom": nil, "validTo": nil}
	if from != nil {
		body["validFrom"] = from.UnixMilli()
	}
	if to != nil {
		body["validTo"] = to.UnixMilli()
	}
	return body
}
