package handlers

import (
	"sort"

	"shape-api/internal/shapes/engine"
	"shape-api/internal/shapes/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Shape list handlers
// ============================================================

type listRequest struct {
	Shapes []models.Shape `json:"shapes"`
}

// ListShapes возвращает фигуры холста со сводкой по количеству и типам.
func ListShapes(c fiber.Ctx) error {
	var req listRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	shapes := req.Shapes
	if shapes == nil {
		shapes = []models.Shape{}
	}
	return c.JSON(fiber.Map{
		"shapes": shapes,
		"count":  len(shapes),
		"types":  distinctTypes(shapes),
	})
}

type modifyRequest struct {
	Shapes        *[]models.Shape `json:"shapes"`
	ShapeIndex    *int            `json:"shape_index"`
	Modifications map[string]any  `json:"modifications"`
}

// ModifyShape изменяет поля фигуры по индексу.
func ModifyShape(c fiber.Ctx) error {
	var req modifyRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Shapes == nil || req.ShapeIndex == nil {
		return badRequest(c, "Missing required parameters")
	}
	shapes, modified, err := engine.ModifyShape(*req.Shapes, *req.ShapeIndex, req.Modifications)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes":         shapes,
		"modified_shape": modified,
	})
}

type deleteRequest struct {
	Shapes     *[]models.Shape `json:"shapes"`
	ShapeIndex *int            `json:"shape_index"`
}

// DeleteShape удаляет фигуру по индексу.
func DeleteShape(c fiber.Ctx) error {
	var req deleteRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Shapes == nil || req.ShapeIndex == nil {
		return badRequest(c, "Missing required parameters")
	}
	shapes, deleted, err := engine.DeleteShape(*req.Shapes, *req.ShapeIndex)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes":        shapes,
		"deleted_shape": deleted,
	})
}

type batchModifyRequest struct {
	Shapes        *[]models.Shape `json:"shapes"`
	FilterType    string          `json:"filter_type"`
	Modifications map[string]any  `json:"modifications"`
}

// BatchModify изменяет все фигуры, подходящие под фильтр.
func BatchModify(c fiber.Ctx) error {
	var req batchModifyRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.Shapes == nil {
		return badRequest(c, "Missing required parameters")
	}
	filter := req.FilterType
	if filter == "" {
		filter = "all"
	}
	shapes, affected, err := engine.BatchModify(*req.Shapes, filter, req.Modifications)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(fiber.Map{
		"shapes":         shapes,
		"affected_count": affected,
	})
}

// distinctTypes возвращает отсортированные типы без повторов.
func distinctTypes(shapes []models.Shape) []string {
	seen := map[string]bool{}
	types := []string{}
	for _, s := range shapes {
		if !seen[s.Type] {
			seen[s.Type] = true
			types = append(types, s.Type)
		}
	}
	sort.Strings(types)
	return types
}
