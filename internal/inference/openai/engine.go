// Package openai drives any OpenAI-compatible chat completions endpoint
// (vLLM's openai server mode included) as an inference engine.
package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	goopenai "github.com/sashabaranov/go-openai"

	"docread/internal/config"
	"docread/internal/inference"
	"docread/internal/port"
)

// Engine implements port.InferenceEngine over the chat completions API.
type Engine struct {
	client *goopenai.Client
	model  string
}

// NewEngine creates an Engine from the engine config. cfg.Endpoint is the
// API base URL (e.g. http://vllm:8000/v1); empty means the public OpenAI API.
func NewEngine(cfg *config.EngineConfig) (port.InferenceEngine, error) {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	model := cfg.Model
	if model == "" {
		model = "deepseek-ai/DeepSeek-OCR"
	}
	return &Engine{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

func (e *Engine) Name() string { return "openai" }

func (e *Engine) Infer(ctx context.Context, req port.InferenceRequest) (string, error) {
	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(req.Image)

	chatReq := goopenai.ChatCompletionRequest{
		Model: e.model,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role: goopenai.ChatMessageRoleUser,
				MultiContent: []goopenai.ChatMessagePart{
					{
						Type:     goopenai.ChatMessagePartTypeImageURL,
						ImageURL: &goopenai.ChatMessageImageURL{URL: dataURI},
					},
					{
						Type: goopenai.ChatMessagePartTypeText,
						Text: req.Prompt,
					},
				},
			},
		},
		Temperature: float32(req.Sampling.Temperature),
		TopP:        float32(req.Sampling.TopP),
		MaxTokens:   req.Sampling.MaxTokens,
	}
	if len(req.Sampling.Stop) > 0 {
		chatReq.Stop = req.Sampling.Stop
	}

	resp, err := e.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *goopenai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return "", inference.NewRateLimitError("openai", err, 0)
		}
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Ping lists models to confirm the backend is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	if _, err := e.client.ListModels(ctx); err != nil {
		return fmt.Errorf("listing models: %w", err)
	}
	return nil
}
