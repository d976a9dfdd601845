package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"shape-api/internal/generator"
	"shape-api/internal/shapes/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Generate handler (AI boundary)
// ============================================================

const generateTimeout = 30 * time.Second

// ShapeGenerator — источник фигур по текстовому описанию.
type ShapeGenerator interface {
	GenerateShapes(ctx context.Context, request string, canvasWidth, canvasHeight int) ([]models.Shape, error)
}

// GenerateHandler держит генератор и лимит времени на запрос.
type GenerateHandler struct {
	gen     ShapeGenerator
	timeout time.Duration
}

func NewGenerateHandler(gen ShapeGenerator) *GenerateHandler {
	return &GenerateHandler{
		gen:     gen,
		timeout: generateTimeout,
	}
}

type generateRequest struct {
	Request      string `json:"request"`
	CanvasWidth  int    `json:"canvasWidth"`
	CanvasHeight int    `json:"canvasHeight"`
}

// Generate создает фигуры по текстовому описанию через внешнюю модель.
func (h *GenerateHandler) Generate(c fiber.Ctx) error {
	var req generateRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if strings.TrimSpace(req.Request) == "" {
		return badRequest(c, "Missing 'request' parameter")
	}

	log.Printf("[API] generating shapes for: %s", req.Request)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	shapes, err := h.gen.GenerateShapes(ctx, req.Request, req.CanvasWidth, req.CanvasHeight)
	if err != nil {
		log.Printf("[API] generation failed: %v", err)
		return c.Status(502).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  generator.ErrorKind,
		})
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
	})
}
