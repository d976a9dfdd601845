package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Service metadata
// ============================================================

const (
	serviceName    = "AI Shape Generator API"
	serviceVersion = "1.0.0"
)

// Health отвечает на проверку живости сервиса.
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Endpoint    string `json:"endpoint"`
}

// Tools перечисляет доступные операции с их маршрутами.
func Tools(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"tools": toolCatalog(),
	})
}

func toolCatalog() []toolInfo {
	return []toolInfo{
		{Name: "generate_shapes", Description: "Generate canvas shapes from natural language request", Endpoint: "/api/ai/generate-shapes"},
		{Name: "list_shapes", Description: "List all shapes on canvas", Endpoint: "/api/ai/list-shapes"},
		{Name: "modify_shape", Description: "Modify a specific shape", Endpoint: "/api/ai/modify-shape"},
		{Name: "delete_shape", Description: "Delete a shape from canvas", Endpoint: "/api/ai/delete-shape"},
		{Name: "arrange_shapes", Description: "Arrange shapes in a pattern", Endpoint: "/api/ai/arrange-shapes"},
		{Name: "generate_palette", Description: "Generate a color palette", Endpoint: "/api/ai/generate-palette"},
		{Name: "apply_style", Description: "Apply visual style to shapes", Endpoint: "/api/ai/apply-style"},
		{Name: "batch_modify", Description: "Modify multiple shapes at once", Endpoint: "/api/ai/batch-modify"},
		{Name: "generate_pattern", Description: "Generate a pattern of shapes", Endpoint: "/api/ai/generate-pattern"},
		{Name: "analyze_canvas", Description: "Analyze canvas content", Endpoint: "/api/ai/analyze-canvas"},
		{Name: "generate_icon", Description: "Generate an icon", Endpoint: "/api/ai/generate-icon"},
	}
}

// Index — карта сервиса для корневого маршрута.
func Index(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "running",
		"endpoints": fiber.Map{
			"health":           "/api/health",
			"tools":            "/api/tools",
			"generate_shapes":  "/api/ai/generate-shapes",
			"list_shapes":      "/api/ai/list-shapes",
			"modify_shape":     "/api/ai/modify-shape",
			"delete_shape":     "/api/ai/delete-shape",
			"arrange_shapes":   "/api/ai/arrange-shapes",
			"generate_palette": "/api/ai/generate-palette",
			"apply_style":      "/api/ai/apply-style",
			"batch_modify":     "/api/ai/batch-modify",
			"generate_pattern": "/api/ai/generate-pattern",
			"analyze_canvas":   "/api/ai/analyze-canvas",
			"generate_icon":    "/api/ai/generate-icon",
		},
		"documentation": "See /api/tools for endpoint details",
	})
}
