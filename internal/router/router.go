package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "docread/docs"
	"docread/internal/config"
	"docread/internal/handler"
	"docread/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, ocrH *handler.OCRHandler, healthH *handler.HealthHandler) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/", healthH.Root)
	r.GET("/health", healthH.Health)

	// Recognition routes
	ocr := r.Group("/ocr")
	ocr.POST("/image", ocrH.ProcessImage)
	ocr.POST("/pdf", ocrH.ProcessPDF)
	ocr.POST("/batch", ocrH.ProcessBatch)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
