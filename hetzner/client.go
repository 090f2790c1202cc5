// Package hetzner reads the Hetzner Cloud server catalog to show what the
// bot's infrastructure costs per month.
package hetzner

import (
	"net/http"
)

const defaultBaseURL = "https://api.hetzner.cloud/v1"

type Client struct {
	config     Config
	httpClient *http.Client
}

type Config struct {
	BaseURL  string
	APIToken string
}

func NewClient(apiToken string, httpClient http.Client) Client {
	return NewClientWithBaseURL(apiToken, defaultBaseURL, httpClient)
}

func NewClientWithBaseURL(apiToken, baseURL string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			BaseURL:  baseURL,
			APIToken: apiToken,
		},
		httpClient: &httpClient,
	}

	return client
}

func (c *Client) Configured() bool {
	return c.config.APIToken != ""
}
