package models

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Shape kinds
// ============================================================

const (
	KindCircle   = "circle"
	KindRect     = "rect"
	KindEllipse  = "ellipse"
	KindTriangle = "triangle"
	KindPolygon  = "polygon"
	KindLine     = "line"
	KindArrow    = "arrow"
	KindText     = "text"
)

// Kinds возвращает список поддерживаемых типов фигур.
func Kinds() []string {
	return []string{
		KindCircle, KindRect, KindEllipse, KindTriangle,
		KindPolygon, KindLine, KindArrow, KindText,
	}
}

// ============================================================
// Point
// ============================================================

// Point — вершина полигона в абсолютных координатах холста.
type Point struct {
	X float64
	Y float64
}

// MarshalJSON кодирует точку как пару [x, y].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("point must be a [x, y] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("point must be a [x, y] pair, got %d values", len(pair))
	}
	p.X = pair[0]
	p.Y = pair[1]
	return nil
}

// ============================================================
// Shape
// ============================================================

// Shape — фигура холста. Набор значимых полей зависит от Type,
// неиспользуемые поля остаются нулевыми и не сериализуются.
type Shape struct {
	Type string `json:"type"`

	// circle, rect, ellipse, triangle, polygon, text
	X float64 `json:"x"`
	Y float64 `json:"y"`

	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// polygon
	Points []Point `json:"points,omitempty"`

	// line, arrow
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// text
	Text       string  `json:"text,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`

	// Оформление
	Color         string    `json:"color,omitempty"`
	Opacity       *float64  `json:"opacity,omitempty"`
	Dash          []float64 `json:"dash,omitempty"`
	BorderColor   string    `json:"borderColor,omitempty"`
	BorderWidth   float64   `json:"borderWidth,omitempty"`
	ShadowColor   string    `json:"shadowColor,omitempty"`
	ShadowBlur    float64   `json:"shadowBlur,omitempty"`
	ShadowOffsetX float64   `json:"shadowOffsetX,omitempty"`
	ShadowOffsetY float64   `json:"shadowOffsetY,omitempty"`
	Glow          bool      `json:"glow,omitempty"`
	Gradient      bool      `json:"gradient,omitempty"`
	GradientColor string    `json:"gradientColor,omitempty"`
}

// Clone возвращает глубокую копию фигуры.
func (s Shape) Clone() Shape {
	out := s
	if s.Points != nil {
		out.Points = append([]Point(nil), s.Points...)
	}
	if s.Dash != nil {
		out.Dash = append([]float64(nil), s.Dash...)
	}
	if s.Opacity != nil {
		v := *s.Opacity
		out.Opacity = &v
	}
	return out
}

// CloneAll возвращает глубокую копию списка фигур.
func CloneAll(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}
