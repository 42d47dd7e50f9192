package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docread/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())

	assert.Equal(t, "vllm", cfg.Engine.Provider)
	assert.Equal(t, "deepseek-ai/DeepSeek-OCR", cfg.Engine.Model)
	assert.Equal(t, 50, cfg.Engine.MaxConcurrency)
	assert.Equal(t, 300, cfg.Engine.TimeoutSecs)

	assert.Equal(t, 0.1, cfg.Sampling.Temperature)
	assert.Equal(t, 0.95, cfg.Sampling.TopP)
	assert.Equal(t, 1500, cfg.Sampling.MaxTokens)

	assert.Equal(t, 144, cfg.Raster.DPI)
	assert.Equal(t, 2048, cfg.Raster.MaxWidth)
	assert.Equal(t, 2048, cfg.Raster.MaxHeight)

	assert.Equal(t, int64(50), cfg.Limits.MaxFileSizeMB)
	assert.Equal(t, int64(50*1024*1024), cfg.Limits.MaxFileSizeBytes())

	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "noop", cfg.Archive.Provider)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Setenv("DOCREAD_SERVER_PORT", "9100")
	t.Setenv("DOCREAD_ENGINE_PROVIDER", "openai")
	t.Setenv("DOCREAD_ENGINE_ENDPOINT", "http://vllm:8000/v1")
	t.Setenv("DOCREAD_SAMPLING_TEMPERATURE", "0.3")
	t.Setenv("DOCREAD_RASTER_DPI", "300")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Engine.Provider)
	assert.Equal(t, "http://vllm:8000/v1", cfg.Engine.Endpoint)
	assert.Equal(t, 0.3, cfg.Sampling.Temperature)
	assert.Equal(t, 300, cfg.Raster.DPI)
}

func TestLoad_LegacyEnvFallbacks(t *testing.T) {
	t.Setenv("HOST", "10.0.0.5")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("MODEL_PATH", "/models/deepseek-ocr")
	t.Setenv("MAX_CONCURRENCY", "8")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "10.0.0.5", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/models/deepseek-ocr", cfg.Engine.Model)
	assert.Equal(t, 8, cfg.Engine.MaxConcurrency)
}

func TestLoad_PrefixedWinsOverLegacy(t *testing.T) {
	t.Setenv("MODEL_PATH", "/models/legacy")
	t.Setenv("DOCREAD_ENGINE_MODEL", "/models/prefixed")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/models/prefixed", cfg.Engine.Model)
}

func TestLoad_CORSOriginsParsed(t *testing.T) {
	t.Setenv("DOCREAD_CORS_ALLOWED_ORIGINS", "https://app.example.com, http://localhost:3000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_UnknownEngineProviderRejected(t *testing.T) {
	t.Setenv("DOCREAD_ENGINE_PROVIDER", "llamacpp")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown engine provider")
}

func TestLoad_NonPositiveConcurrencyRejected(t *testing.T) {
	t.Setenv("MAX_CONCURRENCY", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_concurrency")
}

func TestValidate_UnknownArchiveProviderRejected(t *testing.T) {
	t.Setenv("DOCREAD_ARCHIVE_PROVIDER", "gcs")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown archive provider")
}
