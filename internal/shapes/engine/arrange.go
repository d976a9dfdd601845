package engine

import (
	"math"
	"strings"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"
)

// ============================================================
// Arrangement
// ============================================================

const (
	defaultSpacing = 20
	arrangeMargin  = 50
	rowBaselineY   = 300
	columnCenterX  = 300
	ringCenterX    = 600
	ringCenterY    = 300
	minRingRadius  = 100
	ringPacking    = 3
	defaultCell    = 100
)

// Arrange раскладывает фигуры по выбранной схеме, не меняя их размеров.
// Порядок фигур сохраняется, результат — новый список.
func Arrange(shapes []models.Shape, arrangement string, spacing float64) ([]models.Shape, error) {
	if spacing < 0 {
		spacing = defaultSpacing
	}
	out := models.CloneAll(shapes)
	switch arrangement {
	case "grid":
		arrangeGrid(out, spacing)
	case "horizontal":
		arrangeHorizontal(out, spacing)
	case "vertical":
		arrangeVertical(out, spacing)
	case "circle":
		arrangeCircle(out, spacing)
	default:
		return nil, models.NewError(models.UnknownArrangement,
			"unknown arrangement type: %q (available: %s)", arrangement, strings.Join(Arrangements(), ", "))
	}
	return out, nil
}

// Arrangements возвращает список доступных схем расстановки.
func Arrangements() []string {
	return []string{"circle", "grid", "horizontal", "vertical"}
}

// arrangeGrid ставит фигуры в квадратную сетку от левого верхнего угла.
func arrangeGrid(shapes []models.Shape, spacing float64) {
	n := len(shapes)
	if n == 0 {
		return
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	cell := maxExtent(shapes)
	pitch := cell + spacing
	for i := range shapes {
		row := i / cols
		col := i % cols
		cx := arrangeMargin + float64(col)*pitch + cell/2
		cy := arrangeMargin + float64(row)*pitch + cell/2
		moveCenterTo(&shapes[i], cx, cy)
	}
}

// arrangeHorizontal выстраивает фигуры в ряд по средней линии холста.
func arrangeHorizontal(shapes []models.Shape, spacing float64) {
	x := float64(arrangeMargin)
	for i := range shapes {
		b := geometry.BoundsOf(shapes[i])
		translate(&shapes[i], x-b.MinX, rowBaselineY-b.CenterY())
		x += b.Width() + spacing
	}
}

// arrangeVertical выстраивает фигуры в колонку.
func arrangeVertical(shapes []models.Shape, spacing float64) {
	y := float64(arrangeMargin)
	for i := range shapes {
		b := geometry.BoundsOf(shapes[i])
		translate(&shapes[i], columnCenterX-b.CenterX(), y-b.MinY)
		y += b.Height() + spacing
	}
}

// arrangeCircle распределяет фигуры равномерно по кольцу вокруг центра холста.
// Радиус растет с числом фигур, чтобы соседи не слипались.
func arrangeCircle(shapes []models.Shape, spacing float64) {
	n := len(shapes)
	if n == 0 {
		return
	}
	if n == 1 {
		moveCenterTo(&shapes[0], ringCenterX, ringCenterY)
		return
	}
	radius := math.Max(minRingRadius, float64(n)*spacing*ringPacking/(2*math.Pi))
	for i := range shapes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		cx := ringCenterX + radius*math.Cos(angle)
		cy := ringCenterY + radius*math.Sin(angle)
		moveCenterTo(&shapes[i], cx, cy)
	}
}

// maxExtent возвращает наибольший размер bounds среди фигур (шаг сетки).
func maxExtent(shapes []models.Shape) float64 {
	extent := 0.0
	for _, s := range shapes {
		b := geometry.BoundsOf(s)
		extent = math.Max(extent, math.Max(b.Width(), b.Height()))
	}
	if extent <= 0 {
		return defaultCell
	}
	return extent
}

// moveCenterTo переносит фигуру так, чтобы центр её bounds совпал с (cx, cy).
func moveCenterTo(s *models.Shape, cx, cy float64) {
	b := geometry.BoundsOf(*s)
	translate(s, cx-b.CenterX(), cy-b.CenterY())
}

// translate жестко сдвигает фигуру на (dx, dy) вместе со всеми вершинами.
func translate(s *models.Shape, dx, dy float64) {
	switch s.Type {
	case models.KindLine, models.KindArrow:
		s.X1 += dx
		s.Y1 += dy
		s.X2 += dx
		s.Y2 += dy
	case models.KindPolygon:
		s.X += dx
		s.Y += dy
		for i := range s.Points {
			s.Points[i].X += dx
			s.Points[i].Y += dy
		}
	default:
		s.X += dx
		s.Y += dy
	}
}
