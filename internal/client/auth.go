package client

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

// Login exchanges credentials for a bearer token and installs it on the
// client. The response body is a bare JSON string fragment, not an object.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/token", nil, func(req *resty.Request) {
		jsonBody(req, map[string]string{
			"email":    email,
			"password": password,
		})
	})
	if err != nil {
		return "", err
	}
	var token string
	if err := utils.Json.Unmarshal(body, &token); err != nil {
		return "", errors.WithMessage(err, "token response is not a JSON string")
	}
	c.token = token
	return token, nil
}
