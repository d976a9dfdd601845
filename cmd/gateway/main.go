package main

import (
	"fmt"
	"log"
	"time"

	"shape-api/internal/common/config"
	"shape-api/internal/common/middleware"
	"shape-api/internal/gateway/handlers"
	"shape-api/internal/gateway/proxy"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "API Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(cfg.ShapeAPIURL))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Documentation Routes
	// ============================================================

	app.Get("/docs", handlers.SwaggerUI)
	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)

	// ============================================================
	// API Routes
	// ============================================================

	api := app.Group("/api/v1")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Gateway v1",
			"status":  "ok",
		})
	})

	// ============================================================
	// Service Routes (Proxy)
	// ============================================================

	// Shape API Service
	shapeURL := cfg.ShapeAPIURL
	api.Get("/health", proxy.ProxyTo(shapeURL+"/api/health"))
	api.Get("/tools", proxy.ProxyTo(shapeURL+"/api/tools"))

	api.Post("/generate-shapes", proxy.ProxyTo(shapeURL+"/api/ai/generate-shapes"))
	api.Post("/list-shapes", proxy.ProxyTo(shapeURL+"/api/ai/list-shapes"))
	api.Post("/modify-shape", proxy.ProxyTo(shapeURL+"/api/ai/modify-shape"))
	api.Post("/delete-shape", proxy.ProxyTo(shapeURL+"/api/ai/delete-shape"))
	api.Post("/batch-modify", proxy.ProxyTo(shapeURL+"/api/ai/batch-modify"))
	api.Post("/arrange-shapes", proxy.ProxyTo(shapeURL+"/api/ai/arrange-shapes"))
	api.Post("/generate-palette", proxy.ProxyTo(shapeURL+"/api/ai/generate-palette"))
	api.Post("/apply-style", proxy.ProxyTo(shapeURL+"/api/ai/apply-style"))
	api.Post("/generate-pattern", proxy.ProxyTo(shapeURL+"/api/ai/generate-pattern"))
	api.Post("/generate-icon", proxy.ProxyTo(shapeURL+"/api/ai/generate-icon"))
	api.Post("/analyze-canvas", proxy.ProxyTo(shapeURL+"/api/ai/analyze-canvas"))

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting API Gateway on %s (env: %s)", addr, cfg.Environment)
	log.Printf("Proxying shape routes to %s", shapeURL)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
