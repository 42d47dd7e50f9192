package inference

import (
	"fmt"

	"docread/internal/config"
	"docread/internal/port"
)

// ProviderFactory is a function that creates an InferenceEngine from the
// engine config.
type ProviderFactory func(cfg *config.EngineConfig) (port.InferenceEngine, error)

// registry of engine provider factories, populated by the server entry point
// via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an engine provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewEngine creates an InferenceEngine using the registered factory for
// cfg.Provider.
func NewEngine(cfg *config.EngineConfig) (port.InferenceEngine, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown engine provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
