package engine

import (
	"math"
	"strings"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Patterns
// ============================================================

// Размеры холста по умолчанию.
const (
	DefaultCanvasWidth  = 1200
	DefaultCanvasHeight = 600
)

const defaultPatternCount = 10

const (
	checkerDark   = "#111827"
	checkerLight  = "#e5e7eb"
	dotColor      = "#2563eb"
	waveColor     = "#7c3aed"
	diagonalColor = "#059669"
	strokeColor   = "#64748b"
)

// GeneratePattern синтезирует детерминированный узор из count фигур.
// Все координаты лежат в пределах холста.
func GeneratePattern(patternType string, count int, width, height float64) ([]models.Shape, error) {
	if count <= 0 {
		count = defaultPatternCount
	}
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	switch patternType {
	case "checkerboard":
		return checkerboardPattern(count, width, height), nil
	case "dots":
		return dotsPattern(count, width, height), nil
	case "wave":
		return wavePattern(count, width, height), nil
	case "diagonal":
		return diagonalPattern(count, width, height), nil
	case "lines":
		return linesPattern(count, width, height), nil
	default:
		return nil, models.NewError(models.UnknownPattern,
			"unknown pattern type: %q (available: %s)", patternType, strings.Join(Patterns(), ", "))
	}
}

// Patterns возвращает список доступных узоров.
func Patterns() []string {
	return []string{"checkerboard", "diagonal", "dots", "lines", "wave"}
}

// checkerboardPattern заполняет холст клетками построчно, пока не выйдет count.
func checkerboardPattern(count int, width, height float64) []models.Shape {
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := int(math.Ceil(float64(count) / float64(cols)))
	cellW := width / float64(cols)
	cellH := height / float64(rows)

	shapes := make([]models.Shape, 0, count)
	for i := 0; i < count; i++ {
		row := i / cols
		col := i % cols
		color := checkerDark
		if (row+col)%2 == 1 {
			color = checkerLight
		}
		shapes = append(shapes, models.Shape{
			Type:   models.KindRect,
			X:      float64(col) * cellW,
			Y:      float64(row) * cellH,
			Width:  cellW,
			Height: cellH,
			Color:  color,
		})
	}
	return shapes
}

// dotsPattern раскладывает точки концентрическими кольцами: центр,
// затем кольцо k на 6k точек.
func dotsPattern(count int, width, height float64) []models.Shape {
	const dotRadius = 8

	cx := width / 2
	cy := height / 2
	maxRadius := math.Min(width, height)/2 - 20
	if maxRadius <= 0 {
		maxRadius = math.Min(width, height) / 2
	}

	rings := 0
	capacity := 1
	for capacity < count {
		rings++
		capacity += 6 * rings
	}

	shapes := make([]models.Shape, 0, count)
	shapes = append(shapes, dot(cx, cy, dotRadius))
	placed := 1
	for k := 1; k <= rings && placed < count; k++ {
		ringRadius := maxRadius * float64(k) / float64(rings)
		ringCount := 6 * k
		if left := count - placed; ringCount > left {
			ringCount = left
		}
		for j := 0; j < ringCount; j++ {
			angle := 2 * math.Pi * float64(j) / float64(ringCount)
			x := clamp(cx+ringRadius*math.Cos(angle), 0, width)
			y := clamp(cy+ringRadius*math.Sin(angle), 0, height)
			shapes = append(shapes, dot(x, y, dotRadius))
		}
		placed += ringCount
	}
	return shapes
}

func dot(x, y, radius float64) models.Shape {
	return models.Shape{
		Type:   models.KindCircle,
		X:      x,
		Y:      y,
		Radius: radius,
		Color:  dotColor,
	}
}

// wavePattern рисует две синусоиды точками вдоль всей ширины.
func wavePattern(count int, width, height float64) []models.Shape {
	const waveRadius = 10

	shapes := make([]models.Shape, 0, count)
	for i := 0; i < count; i++ {
		x := width / 2
		if count > 1 {
			x = width * float64(i) / float64(count-1)
		}
		phase := 4 * math.Pi * float64(i) / float64(count)
		y := height/2 + height/4*math.Sin(phase)
		shapes = append(shapes, models.Shape{
			Type:   models.KindCircle,
			X:      clamp(x, 0, width),
			Y:      clamp(y, 0, height),
			Radius: waveRadius,
			Color:  waveColor,
		})
	}
	return shapes
}

// diagonalPattern ведет квадраты по диагонали из левого верхнего угла.
func diagonalPattern(count int, width, height float64) []models.Shape {
	const size = 40

	step := 1.0
	if count > 1 {
		step = 1 / float64(count-1)
	}
	shapes := make([]models.Shape, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) * step
		shapes = append(shapes, models.Shape{
			Type:   models.KindRect,
			X:      clamp((width-size)*t, 0, width),
			Y:      clamp((height-size)*t, 0, height),
			Width:  size,
			Height: size,
			Color:  diagonalColor,
		})
	}
	return shapes
}

// linesPattern расставляет вертикальные линии с равным шагом.
func linesPattern(count int, width, height float64) []models.Shape {
	shapes := make([]models.Shape, 0, count)
	for i := 0; i < count; i++ {
		x := clamp((float64(i)+0.5)*width/float64(count), 0, width)
		shapes = append(shapes, models.Shape{
			Type:  models.KindLine,
			X1:    x,
			Y1:    0,
			X2:    x,
			Y2:    height,
			Width: 2,
			Color: strokeColor,
		})
	}
	return shapes
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
