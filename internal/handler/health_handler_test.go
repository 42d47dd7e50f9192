package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docread/internal/config"
	"docread/internal/handler"
	"docread/mocks"
)

func healthConfig() *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			Provider:       "vllm",
			Model:          "deepseek-ai/DeepSeek-OCR",
			MaxConcurrency: 50,
		},
	}
}

func TestHealthHandler_Root(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockOCRService), healthConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	h.Root(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DeepSeek-OCR API is running", resp["message"])
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthHandler_Health_EngineReady(t *testing.T) {
	mockSvc := new(mocks.MockOCRService)
	mockSvc.On("EngineReady", mock.Anything).Return(nil)
	mockSvc.On("InFlight").Return(2)

	h := handler.NewHealthHandler(mockSvc, healthConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "vllm", resp["engine"])
	assert.Equal(t, true, resp["engine_ready"])
	assert.Equal(t, "deepseek-ai/DeepSeek-OCR", resp["model"])
	assert.Equal(t, float64(50), resp["max_concurrency"])
	assert.Equal(t, float64(2), resp["in_flight"])
}

func TestHealthHandler_Health_EngineDown(t *testing.T) {
	mockSvc := new(mocks.MockOCRService)
	mockSvc.On("EngineReady", mock.Anything).Return(errors.New("connection refused"))
	mockSvc.On("InFlight").Return(0)

	h := handler.NewHealthHandler(mockSvc, healthConfig())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/health", nil)

	h.Health(c)

	assert.Equal(t, http.StatusOK, w.Code, "health stays 200 so probes can read the detail fields")

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["engine_ready"])
}
