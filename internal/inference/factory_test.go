package inference_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"docread/internal/config"
	"docread/internal/inference"
	"docread/internal/port"
)

func TestFactory_RegisterAndCreate(t *testing.T) {
	inference.RegisterProvider("test-provider", func(cfg *config.EngineConfig) (port.InferenceEngine, error) {
		return &stubEngine{name: cfg.Model}, nil
	})

	e, err := inference.NewEngine(&config.EngineConfig{
		Provider: "test-provider",
		Model:    "test-model",
	})

	assert.NoError(t, err)
	assert.NotNil(t, e)
	assert.Equal(t, "test-model", e.Name())
}

func TestFactory_UnknownProvider(t *testing.T) {
	e, err := inference.NewEngine(&config.EngineConfig{
		Provider: "nonexistent-provider-xyz",
	})

	assert.Nil(t, e)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine provider")
}

// stubEngine is a minimal InferenceEngine for testing the factory.
type stubEngine struct {
	name string
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Infer(_ context.Context, _ port.InferenceRequest) (string, error) {
	return "", nil
}

func (s *stubEngine) Ping(_ context.Context) error { return nil }
