package main

import (
	"fmt"
	"log"

	"docread/internal/config"
	"docread/internal/handler"
	"docread/internal/inference"
	"docread/internal/inference/openai"
	"docread/internal/inference/vllm"
	"docread/internal/port"
	"docread/internal/raster"
	"docread/internal/router"
	"docread/internal/service"
	noopstorage "docread/internal/storage/noop"
	s3storage "docread/internal/storage/s3"
)

// @title DeepSeek-OCR API
// @version 1.0
// @description Document-to-text recognition service backed by a generative vision-language engine.
// @BasePath /

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Register engine providers
	inference.RegisterProvider("vllm", vllm.NewEngine)
	inference.RegisterProvider("openai", openai.NewEngine)

	engine, err := inference.NewEngine(&cfg.Engine)
	if err != nil {
		return fmt.Errorf("failed to initialize inference engine: %w", err)
	}

	// Initialize the rasterizer and archive sink
	rasterizer := raster.NewRenderer(cfg.Raster.MaxWidth, cfg.Raster.MaxHeight)

	var store port.ObjectStorage
	switch cfg.Archive.Provider {
	case "s3":
		store, err = s3storage.NewS3Client(&cfg.Archive.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	default:
		store = noopstorage.NewNoopStore()
	}

	// Initialize services
	ocrSvc := service.NewOCRService(engine, rasterizer, store, cfg)

	// Initialize handlers
	ocrH := handler.NewOCRHandler(ocrSvc)
	healthH := handler.NewHealthHandler(ocrSvc, cfg)

	// Setup router
	r := router.Setup(cfg, ocrH, healthH)

	log.Printf("Server starting on %s (engine=%s, model=%s, max_concurrency=%d)",
		cfg.Server.Addr(), cfg.Engine.Provider, cfg.Engine.Model, cfg.Engine.MaxConcurrency)
	if err := r.Run(cfg.Server.Addr()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
