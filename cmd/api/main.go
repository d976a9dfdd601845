package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"shape-api/internal/common/config"
	"shape-api/internal/common/middleware"
	"shape-api/internal/generator"
	"shape-api/internal/shapes/handlers"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Shape API Service
// ============================================================

func main() {
	cfg := config.Load()
	if p := os.Getenv("API_PORT"); p != "" {
		cfg.Port = p
	} else if os.Getenv("PORT") == "" {
		cfg.Port = "5000"
	}

	if cfg.OpenAIKey == "" {
		log.Printf("[API] warning: OPENAI_API_KEY is not set, /api/ai/generate-shapes will fail")
	}

	gen := generator.New(cfg.OpenAIKey, cfg.OpenAIModel)
	genHandler := handlers.NewGenerateHandler(gen)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Shape API Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Service Info Routes
	// ============================================================

	app.Get("/", handlers.Index)
	app.Get("/api/health", handlers.Health)
	app.Get("/api/tools", handlers.Tools)

	// ============================================================
	// Shape Tool Routes
	// ============================================================

	ai := app.Group("/api/ai")

	ai.Post("/generate-shapes", genHandler.Generate)
	ai.Post("/list-shapes", handlers.ListShapes)
	ai.Post("/modify-shape", handlers.ModifyShape)
	ai.Post("/delete-shape", handlers.DeleteShape)
	ai.Post("/batch-modify", handlers.BatchModify)
	ai.Post("/arrange-shapes", handlers.ArrangeShapes)
	ai.Post("/generate-palette", handlers.GeneratePalette)
	ai.Post("/apply-style", handlers.ApplyStyle)
	ai.Post("/generate-pattern", handlers.GeneratePattern)
	ai.Post("/generate-icon", handlers.GenerateIcon)
	ai.Post("/analyze-canvas", handlers.AnalyzeCanvas)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Shape API Service on %s (env: %s)", addr, cfg.Environment)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
