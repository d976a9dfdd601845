package handlers

import (
	"shape-api/internal/shapes/engine"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Synthesis handlers
// ============================================================

type patternRequest struct {
	PatternType  string  `json:"pattern_type"`
	Count        int     `json:"count"`
	CanvasWidth  float64 `json:"canvas_width"`
	CanvasHeight float64 `json:"canvas_height"`
}

// GeneratePattern синтезирует детерминированный узор.
func GeneratePattern(c fiber.Ctx) error {
	var req patternRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.PatternType == "" {
		return badRequest(c, "Missing 'pattern_type' parameter")
	}
	shapes, err := engine.GeneratePattern(req.PatternType, req.Count, req.CanvasWidth, req.CanvasHeight)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
	})
}

type iconRequest struct {
	IconName string  `json:"icon_name"`
	Size     float64 `json:"size"`
	Color    string  `json:"color"`
}

// GenerateIcon строит пиктограмму из примитивов.
func GenerateIcon(c fiber.Ctx) error {
	var req iconRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.IconName == "" {
		return badRequest(c, "Missing 'icon_name' parameter")
	}
	shapes, err := engine.GenerateIcon(req.IconName, req.Size, req.Color)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
	})
}
