// Package langfuse is a minimal client for the Langfuse prompt-management
// API, used when Sofia's system prompt is versioned remotely instead of held
// in dashboard memory.
package langfuse

import (
	"net/http"
)

type Client struct {
	config     Config
	httpClient *http.Client
}

type Config struct {
	Host      string
	PublicKey string
	SecretKey string
}

func NewClient(host, publicKey, secretKey string, httpClient http.Client) Client {
	client := Client{
		config: Config{
			Host:      host,
			PublicKey: publicKey,
			SecretKey: secretKey,
		},
		httpClient: &httpClient,
	}

	return client
}

func (c *Client) Configured() bool {
	return c.config.Host != "" && c.config.PublicKey != "" && c.config.SecretKey != ""
}
