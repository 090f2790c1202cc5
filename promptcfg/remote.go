package promptcfg

import (
	"context"
	"fmt"
	"time"

	"github.com/gps-estudio/sofia-dashboard/langfuse"
)

// RemoteStore versions the prompt through Langfuse: every update creates a
// new immutable version labeled production, and reads always return the
// latest production version. This backend does not carry a model field, and
// it fails loudly when unreachable or unconfigured.
type RemoteStore struct {
	client     *langfuse.Client
	promptName string
}

func NewRemoteStore(client *langfuse.Client, promptName string) *RemoteStore {
	return &RemoteStore{
		client:     client,
		promptName: promptName,
	}
}

func (s *RemoteStore) Read(ctx context.Context) (Config, error) {
	if !s.client.Configured() {
		return Config{}, ErrNotConfigured
	}

	version, err := s.client.GetPromptVersion(ctx, s.promptName)
	if err != nil {
		return Config{}, fmt.Errorf("failed to fetch prompt from Langfuse: %w", err)
	}

	return Config{
		Prompt:      version.Prompt,
		Source:      "langfuse",
		Version:     version.Version,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *RemoteStore) Update(ctx context.Context, req UpdateRequest) (UpdateResult, error) {
	if !s.client.Configured() {
		return UpdateResult{}, ErrNotConfigured
	}

	if req.Model != nil {
		return UpdateResult{}, &ValidationError{
			Reason: "La selección de modelo no está disponible con Langfuse",
		}
	}

	if req.Prompt == nil {
		return UpdateResult{}, &ValidationError{Reason: "Prompt requerido"}
	}

	version, err := s.client.CreatePromptVersion(ctx, s.promptName, *req.Prompt)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to create prompt version: %w", err)
	}

	return UpdateResult{
		Success:      true,
		PromptLength: len(*req.Prompt),
		Version:      version.Version,
		Message:      fmt.Sprintf("Versión %d publicada en Langfuse", version.Version),
	}, nil
}
