package engine

import (
	"sort"
	"strings"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"
)

// ============================================================
// Canvas analysis
// ============================================================

// Analysis — сводка по содержимому холста.
type Analysis struct {
	TotalShapes int              `json:"total_shapes"`
	ShapeTypes  map[string]int   `json:"shape_types"`
	ColorsUsed  []string         `json:"colors_used"`
	Bounds      *geometry.Bounds `json:"bounds"`
}

// Analyze собирает сводку: количество фигур, счетчики по типам,
// использованные цвета и общий охватывающий прямоугольник.
func Analyze(shapes []models.Shape) Analysis {
	a := Analysis{
		TotalShapes: len(shapes),
		ShapeTypes:  map[string]int{},
		ColorsUsed:  []string{},
	}
	seen := map[string]bool{}
	for _, s := range shapes {
		a.ShapeTypes[s.Type]++
		if s.Color == "" {
			continue
		}
		color := strings.ToLower(s.Color)
		if !seen[color] {
			seen[color] = true
			a.ColorsUsed = append(a.ColorsUsed, color)
		}
	}
	sort.Strings(a.ColorsUsed)
	if b, ok := geometry.BoundsOfAll(shapes); ok {
		a.Bounds = &b
	}
	return a
}
