// Package client talks to the Digi Storage REST API: one authenticated
// request at a time, typed responses, and a single status-code-to-error
// mapping shared by every endpoint.
package client

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/DigiCloudTeam/digicloud/internal/conf"
)

const UserAgent = "digicloud-go/" + "1"

var DefaultTimeout = time.Second * 30

type Config struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	RetryNum int
}

type Client struct {
	base  string
	token string
	http  *resty.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = conf.DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	c := &Client{
		base:  strings.TrimSuffix(cfg.BaseURL, "/"),
		token: cfg.Token,
	}
	c.http = resty.New().
		SetHeader("user-agent", UserAgent).
		SetRetryCount(cfg.RetryNum).
		SetRetryResetReaders(true).
		SetTimeout(cfg.Timeout)
	return c
}

// FromConf builds a client from the process configuration.
func FromConf(cfg *conf.Config) *Client {
	return New(Config{
		BaseURL:  cfg.BaseURL,
		Token:    cfg.Token,
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
		RetryNum: cfg.RetryNum,
	})
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) BaseURL() string {
	return c.base
}
