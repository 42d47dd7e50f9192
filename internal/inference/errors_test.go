package inference_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"docread/internal/inference"
)

func TestRateLimitError_ErrorString(t *testing.T) {
	underlying := fmt.Errorf("rate limited")
	rlErr := inference.NewRateLimitError("vllm", underlying, 30)

	assert.Contains(t, rlErr.Error(), "vllm")
	assert.Contains(t, rlErr.Error(), "rate limited")
	assert.Contains(t, rlErr.Error(), "30s")
}

func TestRateLimitError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	rlErr := inference.NewRateLimitError("openai", underlying, 60)

	assert.Equal(t, underlying, errors.Unwrap(rlErr))
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	underlying := fmt.Errorf("rate limited")
	rlErr := inference.NewRateLimitError("vllm", underlying, 30)

	wrapped := fmt.Errorf("infer failed: %w", rlErr)

	var target *inference.RateLimitError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "vllm", target.Provider)
	assert.Equal(t, 30*time.Second, target.RetryAfter)
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	rlErr := inference.NewRateLimitError("openai", fmt.Errorf("err"), 0)

	assert.Equal(t, 60*time.Second, rlErr.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, inference.ParseRetryAfterHeader(""))
	assert.Equal(t, 30, inference.ParseRetryAfterHeader("30"))
	assert.Equal(t, 0, inference.ParseRetryAfterHeader("invalid"))
	assert.Equal(t, 120, inference.ParseRetryAfterHeader("120"))
}
