package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// The label marking which prompt version is currently live.
const productionLabel = "production"

// PromptVersion is one immutable version of a named text prompt.
type PromptVersion struct {
	Name    string   `json:"name"`
	Prompt  string   `json:"prompt"`
	Version int      `json:"version"`
	Labels  []string `json:"labels"`
}

// GetPromptVersion fetches the production-labeled version of the named
// prompt.
func (c *Client) GetPromptVersion(ctx context.Context, name string) (*PromptVersion, error) {
	endpoint := fmt.Sprintf("%s/api/public/v2/prompts/%s?label=%s",
		c.config.Host, url.PathEscape(name), productionLabel)

	body, err := c.sendRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var version PromptVersion
	if err := json.Unmarshal(body, &version); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &version, nil
}

// CreatePromptVersion creates a new version of the named prompt and labels it
// production, making it the live version.
func (c *Client) CreatePromptVersion(ctx context.Context, name, prompt string) (*PromptVersion, error) {
	payload := map[string]any{
		"name":   name,
		"prompt": prompt,
		"type":   "text",
		"labels": []string{productionLabel},
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.config.Host+"/api/public/v2/prompts", payload)
	if err != nil {
		return nil, err
	}

	var version PromptVersion
	if err := json.Unmarshal(body, &version); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &version, nil
}

func (c *Client) sendRequest(ctx context.Context, method, endpoint string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.config.PublicKey, c.config.SecretKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("Langfuse API error: %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return responseBody, nil
}
