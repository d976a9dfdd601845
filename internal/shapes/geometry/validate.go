package geometry

import (
	"math"
	"strings"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Field tables
// ============================================================

// Поля оформления, допустимые для любого типа фигуры.
var commonFields = map[string]bool{
	"color":         true,
	"opacity":       true,
	"borderColor":   true,
	"borderWidth":   true,
	"shadowColor":   true,
	"shadowBlur":    true,
	"shadowOffsetX": true,
	"shadowOffsetY": true,
	"glow":          true,
	"gradient":      true,
	"gradientColor": true,
}

// Геометрические поля по типам фигур.
var kindFields = map[string]map[string]bool{
	models.KindCircle:   {"x": true, "y": true, "radius": true},
	models.KindRect:     {"x": true, "y": true, "width": true, "height": true},
	models.KindEllipse:  {"x": true, "y": true, "width": true, "height": true},
	models.KindTriangle: {"x": true, "y": true, "width": true, "height": true},
	models.KindPolygon:  {"x": true, "y": true, "points": true},
	models.KindLine:     {"x1": true, "y1": true, "x2": true, "y2": true, "width": true, "dash": true},
	models.KindArrow:    {"x1": true, "y1": true, "x2": true, "y2": true, "width": true, "dash": true},
	models.KindText:     {"x": true, "y": true, "text": true, "fontSize": true, "fontFamily": true},
}

// KnownKind проверяет, что тип фигуры поддерживается.
func KnownKind(kind string) bool {
	_, ok := kindFields[kind]
	return ok
}

// AllowedField проверяет, что поле применимо к данному типу фигуры.
func AllowedField(kind, field string) bool {
	if commonFields[field] {
		return true
	}
	return kindFields[kind][field]
}

// ============================================================
// Validation
// ============================================================

// Validate проверяет фигуру: известный тип, конечные координаты,
// невырожденные размеры, корректные цвет и прозрачность.
func Validate(s models.Shape) error {
	if !KnownKind(s.Type) {
		return models.NewError(models.UnknownShapeKind,
			"unknown shape type: %q (expected one of: %s)", s.Type, strings.Join(models.Kinds(), ", "))
	}

	switch s.Type {
	case models.KindCircle:
		if err := finiteField("x", s.X); err != nil {
			return err
		}
		if err := finiteField("y", s.Y); err != nil {
			return err
		}
		if err := positiveField("radius", s.Radius); err != nil {
			return err
		}

	case models.KindRect, models.KindEllipse, models.KindTriangle:
		if err := finiteField("x", s.X); err != nil {
			return err
		}
		if err := finiteField("y", s.Y); err != nil {
			return err
		}
		if err := positiveField("width", s.Width); err != nil {
			return err
		}
		if err := positiveField("height", s.Height); err != nil {
			return err
		}

	case models.KindPolygon:
		if err := finiteField("x", s.X); err != nil {
			return err
		}
		if err := finiteField("y", s.Y); err != nil {
			return err
		}
		if len(s.Points) < 3 {
			return models.NewError(models.FieldError,
				"polygon requires at least 3 points, got %d", len(s.Points))
		}
		for i, p := range s.Points {
			if !finite(p.X) || !finite(p.Y) {
				return models.NewError(models.FieldError,
					"polygon point %d must have finite coordinates", i)
			}
		}

	case models.KindLine, models.KindArrow:
		for _, f := range []struct {
			name  string
			value float64
		}{{"x1", s.X1}, {"y1", s.Y1}, {"x2", s.X2}, {"y2", s.Y2}} {
			if err := finiteField(f.name, f.value); err != nil {
				return err
			}
		}
		if s.Width != 0 {
			if err := positiveField("width", s.Width); err != nil {
				return err
			}
		}

	case models.KindText:
		if err := finiteField("x", s.X); err != nil {
			return err
		}
		if err := finiteField("y", s.Y); err != nil {
			return err
		}
		if s.Text == "" {
			return models.NewError(models.FieldError, "text content must not be empty")
		}
		if err := positiveField("fontSize", s.FontSize); err != nil {
			return err
		}
		if s.FontFamily == "" {
			return models.NewError(models.FieldError, "fontFamily must not be empty")
		}
	}

	if s.Color != "" && !models.ValidHexColor(s.Color) {
		return models.NewError(models.FieldError,
			"color must be in #rrggbb format, got %q", s.Color)
	}
	if s.Opacity != nil {
		o := *s.Opacity
		if !finite(o) || o < 0 || o > 1 {
			return models.NewError(models.FieldError,
				"opacity must be a number within [0, 1]")
		}
	}

	return nil
}

// ValidateAll проверяет список фигур и указывает индекс первой ошибки.
func ValidateAll(shapes []models.Shape) error {
	for i, s := range shapes {
		if err := Validate(s); err != nil {
			return models.NewError(models.KindOf(err), "shape %d: %s", i, err.Error())
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteField(name string, v float64) error {
	if !finite(v) {
		return models.NewError(models.FieldError,
			"field %q must be a finite number", name)
	}
	return nil
}

func positiveField(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return models.NewError(models.FieldError,
			"field %q must be a positive number", name)
	}
	return nil
}
