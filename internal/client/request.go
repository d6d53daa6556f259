package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/errs"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

type ReqCallback func(req *resty.Request)

// request performs one API call. Outcomes:
//   - transport failure: status 0 and an error wrapping errs.NetworkFailure;
//   - any HTTP status: body bytes and the numeric status, no error. Callers
//     that only care about success/failure go through do instead.
func (c *Client) request(ctx context.Context, method, api string, query map[string]string, callback ReqCallback) ([]byte, int, error) {
	url := c.base + api
	if qs := utils.EncodeQuery(query); qs != "" {
		url += "?" + qs
	}
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.SetHeader("Authorization", "Token "+c.token)
	}
	if callback != nil {
		callback(req)
	}
	res, err := req.Execute(method, url)
	if err != nil {
		return nil, 0, errors.WithMessagef(errs.NetworkFailure, "%s %s: %s", method, api, err)
	}
	log.Debugf("[digicloud] %s %s -> %d (%dB)", method, api, res.StatusCode(), len(res.Body()))
	return res.Body(), res.StatusCode(), nil
}

// do performs one API call and folds the status into a domain error via
// errs.FromStatusCode. The returned body may be empty on 2xx.
func (c *Client) do(ctx context.Context, method, api string, query map[string]string, callback ReqCallback) ([]byte, error) {
	body, code, err := c.request(ctx, method, api, query, callback)
	if err != nil {
		return nil, err
	}
	if serr := errs.FromStatusCode(code); serr != nil {
		return nil, errors.WithMessagef(serr, "%s %s: status %d", method, api, code)
	}
	return body, nil
}

func jsonBody(req *resty.Request, body any) {
	req.SetHeader("Content-Type", "application/json").SetBody(body)
}

func apiMountPath(mountID, op string) string {
	return fmt.Sprintf("/api/v2/mounts/%s/files/%s", mountID, op)
}
