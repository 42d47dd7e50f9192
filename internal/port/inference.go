package port

import (
	"context"

	"docread/internal/sampling"
)

// InferenceRequest carries one page image and its effective configuration
// into the engine.
type InferenceRequest struct {
	Image    []byte // PNG-encoded page pixels
	Prompt   string
	Sampling sampling.Params
}

// InferenceEngine abstracts the generative vision-language engine that turns
// a page image into text. Implementations live out of process and are
// reached over HTTP; calls may block for the duration of generation and must
// not be assumed idempotent.
type InferenceEngine interface {
	// Name identifies the provider ("vllm", "openai").
	Name() string

	// Infer runs one generation call and returns the raw model output.
	Infer(ctx context.Context, req InferenceRequest) (string, error)

	// Ping reports whether the engine backend is reachable.
	Ping(ctx context.Context) error
}
