package promptcfg

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string {
	return &s
}

func TestMemoryStore_ReadDefaults(t *testing.T) {
	store := NewMemoryStore()

	cfg, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, expected default gpt-4o-mini", cfg.Model)
	}
	if cfg.Source != "local" {
		t.Errorf("Source = %q, expected local", cfg.Source)
	}
	if !strings.Contains(cfg.Prompt, "Sofía") {
		t.Error("Expected default prompt to mention Sofía")
	}
}

func TestMemoryStore_InvalidModelRejectedAndStateUnchanged(t *testing.T) {
	store := NewMemoryStore()
	before, _ := store.Read(context.Background())

	_, err := store.Update(context.Background(), UpdateRequest{
		Prompt: strPtr("nuevo prompt"),
		Model:  strPtr("not-a-real-model"),
	})

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if !strings.Contains(validationErr.Reason, "gpt-4o-mini") {
		t.Errorf("Expected rejection message to list valid options, got %q", validationErr.Reason)
	}

	after, _ := store.Read(context.Background())
	if after.Model != before.Model {
		t.Errorf("Model changed to %q after rejected update", after.Model)
	}
	if after.Prompt != before.Prompt {
		t.Error("Prompt changed after rejected update")
	}
}

func TestMemoryStore_ValidUpdateReflected(t *testing.T) {
	store := NewMemoryStore()

	result, err := store.Update(context.Background(), UpdateRequest{
		Prompt: strPtr("Eres Sofía, versión corta."),
		Model:  strPtr("gpt-4o"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !result.Success {
		t.Error("Expected success result")
	}
	if result.Model != "gpt-4o" {
		t.Errorf("Result model = %q, expected gpt-4o", result.Model)
	}
	if result.PromptLength != len("Eres Sofía, versión corta.") {
		t.Errorf("PromptLength = %d, expected %d", result.PromptLength, len("Eres Sofía, versión corta."))
	}

	cfg, _ := store.Read(context.Background())
	if cfg.Prompt != "Eres Sofía, versión corta." || cfg.Model != "gpt-4o" {
		t.Errorf("Read after update = %+v, expected new values", cfg)
	}
}

func TestMemoryStore_PartialUpdate(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Update(context.Background(), UpdateRequest{Model: strPtr("gpt-5-mini")}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	cfg, _ := store.Read(context.Background())
	if cfg.Model != "gpt-5-mini" {
		t.Errorf("Model = %q, expected gpt-5-mini", cfg.Model)
	}
	if !strings.Contains(cfg.Prompt, "Sofía") {
		t.Error("Prompt should be untouched by a model-only update")
	}
}
