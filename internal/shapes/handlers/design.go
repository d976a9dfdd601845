package handlers

import (
	"shape-api/internal/shapes/engine"
	"shape-api/internal/shapes/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Design handlers
// ============================================================

type arrangeRequest struct {
	Shapes          *[]models.Shape `json:"shapes"`
	ArrangementType string          `json:"arrangement_type"`
	Spacing         *float64        `json:"spacing"`
}

// ArrangeShapes раскладывает фигуры по выбранной схеме.
func ArrangeShapes(c fiber.Ctx) error {
	var req arrangeRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Shapes == nil || req.ArrangementType == "" {
		return badRequest(c, "Missing required parameters")
	}
	spacing := float64(20)
	if req.Spacing != nil {
		spacing = *req.Spacing
	}
	shapes, err := engine.Arrange(*req.Shapes, req.ArrangementType, spacing)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
	})
}

type paletteRequest struct {
	ColorScheme string `json:"color_scheme"`
}

// GeneratePalette возвращает палитру по имени схемы.
func GeneratePalette(c fiber.Ctx) error {
	var req paletteRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	scheme := req.ColorScheme
	if scheme == "" {
		scheme = "vibrant"
	}
	colors, err := engine.Palette(scheme)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"scheme": scheme,
		"colors": colors,
	})
}

type applyStyleRequest struct {
	Shapes *[]models.Shape `json:"shapes"`
	Style  string          `json:"style"`
}

// ApplyStyle применяет стиль оформления ко всем фигурам.
func ApplyStyle(c fiber.Ctx) error {
	var req applyStyleRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Shapes == nil || req.Style == "" {
		return badRequest(c, "Missing required parameters")
	}
	shapes, err := engine.ApplyStyle(*req.Shapes, req.Style)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
	})
}
