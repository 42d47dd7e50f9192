package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docread/internal/config"
	"docread/internal/service"
)

// pingTimeout bounds the engine reachability probe so a wedged sidecar
// cannot stall the health endpoint.
const pingTimeout = 2 * time.Second

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	ocrService service.OCRService
	cfg        *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(ocrService service.OCRService, cfg *config.Config) *HealthHandler {
	return &HealthHandler{ocrService: ocrService, cfg: cfg}
}

// Root handles GET /
// @Summary Service banner
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Service is up"
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "DeepSeek-OCR API is running",
		"status":  "healthy",
	})
}

// Health handles GET /health
// @Summary Detailed health check
// @Description Report engine reachability, the configured model, and the current fan-out load
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Health details"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	engineReady := h.ocrService.EngineReady(ctx) == nil

	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"engine":          h.cfg.Engine.Provider,
		"engine_ready":    engineReady,
		"model":           h.cfg.Engine.Model,
		"max_concurrency": h.cfg.Engine.MaxConcurrency,
		"in_flight":       h.ocrService.InFlight(),
	})
}
