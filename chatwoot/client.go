// Package chatwoot talks to the Chatwoot inbox platform that holds Sofia's
// debt-collection conversations.
package chatwoot

import (
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

type Config struct {
	BaseURL     string
	AccountID   string
	AccessToken string
}

func NewClient(baseURL, accountID, accessToken string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			BaseURL:     baseURL,
			AccountID:   accountID,
			AccessToken: accessToken,
		},
		httpClient: &httpClient,
	}

	return client
}

// Configured reports whether all Chatwoot settings are present. When false,
// callers short-circuit to a "not configured" payload before any network call.
func (c *Client) Configured() bool {
	return c.config.BaseURL != "" && c.config.AccountID != "" && c.config.AccessToken != ""
}
