package geometry

import (
	"math"
	"unicode/utf8"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Bounds
// ============================================================

// Bounds — осевой охватывающий прямоугольник в координатах холста.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

func (b Bounds) CenterX() float64 {
	return (b.MinX + b.MaxX) / 2
}

func (b Bounds) CenterY() float64 {
	return (b.MinY + b.MaxY) / 2
}

// Union возвращает минимальный прямоугольник, накрывающий оба.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Ширина текста оценивается по моноширинной метрике: 0.6 от кегля на символ.
const textWidthFactor = 0.6

// BoundsOf вычисляет охватывающий прямоугольник фигуры.
func BoundsOf(s models.Shape) Bounds {
	switch s.Type {
	case models.KindCircle:
		return Bounds{
			MinX: s.X - s.Radius,
			MaxX: s.X + s.Radius,
			MinY: s.Y - s.Radius,
			MaxY: s.Y + s.Radius,
		}

	case models.KindRect, models.KindEllipse, models.KindTriangle:
		return Bounds{
			MinX: s.X,
			MaxX: s.X + s.Width,
			MinY: s.Y,
			MaxY: s.Y + s.Height,
		}

	case models.KindPolygon:
		if len(s.Points) == 0 {
			return pointBounds(s.X, s.Y)
		}
		b := pointBounds(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			b = b.Union(pointBounds(p.X, p.Y))
		}
		return b

	case models.KindLine, models.KindArrow:
		return Bounds{
			MinX: math.Min(s.X1, s.X2),
			MaxX: math.Max(s.X1, s.X2),
			MinY: math.Min(s.Y1, s.Y2),
			MaxY: math.Max(s.Y1, s.Y2),
		}

	case models.KindText:
		width := textWidthFactor * s.FontSize * float64(utf8.RuneCountInString(s.Text))
		return Bounds{
			MinX: s.X,
			MaxX: s.X + width,
			MinY: s.Y,
			MaxY: s.Y + s.FontSize,
		}

	default:
		return pointBounds(s.X, s.Y)
	}
}

// BoundsOfAll вычисляет общий охватывающий прямоугольник списка фигур.
// Для пустого списка возвращает ok=false.
func BoundsOfAll(shapes []models.Shape) (Bounds, bool) {
	if len(shapes) == 0 {
		return Bounds{}, false
	}
	total := BoundsOf(shapes[0])
	for _, s := range shapes[1:] {
		total = total.Union(BoundsOf(s))
	}
	return total, true
}

func pointBounds(x, y float64) Bounds {
	return Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
}
