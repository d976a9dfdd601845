package handlers

import (
	"shape-api/internal/shapes/engine"
	"shape-api/internal/shapes/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Analysis handler
// ============================================================

type analyzeRequest struct {
	Shapes []models.Shape `json:"shapes"`
}

// AnalyzeCanvas возвращает сводку по содержимому холста.
func AnalyzeCanvas(c fiber.Ctx) error {
	var req analyzeRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(engine.Analyze(req.Shapes))
}
