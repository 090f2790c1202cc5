// Package promptcfg holds Sofia's system prompt and model configuration
// behind a single read/update contract with two interchangeable backends: an
// in-memory holder and a Langfuse-versioned one. The deployment picks one at
// startup; they are never mixed.
package promptcfg

import (
	"context"
	"errors"
)

// Config is what a read returns. Model is absent on the remote backend,
// which only versions prompt text.
type Config struct {
	Prompt      string `json:"prompt"`
	Model       string `json:"model,omitempty"`
	Source      string `json:"source"`
	Version     int    `json:"version,omitempty"`
	LastUpdated string `json:"lastUpdated"`
}

// UpdateRequest carries the fields an update may change. Nil fields are left
// untouched.
type UpdateRequest struct {
	Prompt *string `json:"prompt"`
	Model  *string `json:"model"`
}

// UpdateResult reports what an update did.
type UpdateResult struct {
	Success      bool   `json:"success"`
	Model        string `json:"model,omitempty"`
	PromptLength int    `json:"promptLength"`
	Version      int    `json:"version,omitempty"`
	Message      string `json:"message"`
}

type Store interface {
	Read(ctx context.Context) (Config, error)
	Update(ctx context.Context, req UpdateRequest) (UpdateResult, error)
}

// ErrNotConfigured is returned by the remote backend when its Langfuse
// settings are missing. There is no silent local fallback.
var ErrNotConfigured = errors.New("Langfuse no configurado")

// ValidationError marks a rejected update (e.g. a model outside the
// allow-list) so the HTTP layer can answer 400 instead of 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
