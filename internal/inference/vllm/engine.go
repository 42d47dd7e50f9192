// Package vllm talks to a DeepSeek-OCR vLLM sidecar over its native JSON
// infer route.
package vllm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"docread/internal/config"
	"docread/internal/inference"
	"docread/internal/port"
)

type inferRequest struct {
	Prompt              string   `json:"prompt"`
	ImageB64            string   `json:"image_base64"`
	Temperature         float64  `json:"temperature"`
	TopP                float64  `json:"top_p"`
	MaxTokens           int      `json:"max_tokens"`
	SkipSpecialTokens   bool     `json:"skip_special_tokens"`
	IncludeStopInOutput bool     `json:"include_stop_str_in_output"`
	Stop                []string `json:"stop,omitempty"`
}

type inferResponse struct {
	Text string `json:"text"`
}

// Engine implements port.InferenceEngine against the sidecar's infer route.
type Engine struct {
	endpoint  string
	healthURL string
	client    *http.Client
}

// NewEngine creates an Engine from the engine config.
func NewEngine(cfg *config.EngineConfig) (port.InferenceEngine, error) {
	return newEngine(cfg, cfg.Endpoint)
}

// NewEngineWithEndpoint creates an Engine pointing at a custom infer URL
// (for testing).
func NewEngineWithEndpoint(cfg *config.EngineConfig, endpoint string) (*Engine, error) {
	return newEngine(cfg, endpoint)
}

func newEngine(cfg *config.EngineConfig, endpoint string) (*Engine, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parsing engine endpoint: %w", err)
	}
	health := *u
	health.Path = "/health"
	health.RawQuery = ""

	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 300 * time.Second
	}
	conns := cfg.MaxConcurrency
	if conns < 4 {
		conns = 4
	}
	return &Engine{
		endpoint:  endpoint,
		healthURL: health.String(),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxConnsPerHost:     conns,
				MaxIdleConnsPerHost: conns,
				MaxIdleConns:        conns * 2,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

func (e *Engine) Name() string { return "vllm" }

func (e *Engine) Infer(ctx context.Context, req port.InferenceRequest) (string, error) {
	body := inferRequest{
		Prompt:              req.Prompt,
		ImageB64:            base64.StdEncoding.EncodeToString(req.Image),
		Temperature:         req.Sampling.Temperature,
		TopP:                req.Sampling.TopP,
		MaxTokens:           req.Sampling.MaxTokens,
		SkipSpecialTokens:   req.Sampling.SkipSpecialTokens,
		IncludeStopInOutput: req.Sampling.IncludeStopInOutput,
		Stop:                req.Sampling.Stop,
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling infer request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("calling inference sidecar: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("inference sidecar error (status %d): %s", resp.StatusCode, string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := inference.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return "", inference.NewRateLimitError("vllm", baseErr, retryAfter)
		}
		return "", baseErr
	}

	var out inferResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("decoding infer response: %w", err)
	}
	return out.Text, nil
}

// Ping checks the sidecar's health route.
func (e *Engine) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.healthURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating health request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("inference sidecar unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference sidecar unhealthy (status %d)", resp.StatusCode)
	}
	return nil
}
