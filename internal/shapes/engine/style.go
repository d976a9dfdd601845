package engine

import (
	"sort"
	"strings"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Styles
// ============================================================

// Базовый цвет для фигур без собственного цвета.
const defaultBaseColor = "#2563eb"

const (
	shadowColor   = "#00000040"
	shadowBlur    = 12
	shadowOffset  = 4
	outlineColor  = "#111827"
	outlineWidth  = 3
	outlineAmount = 0.4
	glassOpacity  = 0.6
	lightenAmount = 0.4
)

var neonColors = []string{"#ff00ff", "#00ffff", "#39ff14", "#ffff00", "#ff3131", "#bc13fe"}

var styleTransforms = map[string]func(*models.Shape){
	"shadow":   applyShadow,
	"outline":  applyOutline,
	"neon":     applyNeon,
	"glass":    applyGlass,
	"gradient": applyGradient,
}

// ApplyStyle применяет стиль оформления к каждой фигуре списка.
// Геометрия не меняется, повторное применение не меняет результат.
func ApplyStyle(shapes []models.Shape, style string) ([]models.Shape, error) {
	apply, ok := styleTransforms[style]
	if !ok {
		return nil, models.NewError(models.UnknownStyle,
			"unknown style: %q (available: %s)", style, strings.Join(Styles(), ", "))
	}
	out := models.CloneAll(shapes)
	for i := range out {
		apply(&out[i])
	}
	return out, nil
}

// Styles возвращает отсортированный список доступных стилей.
func Styles() []string {
	names := make([]string, 0, len(styleTransforms))
	for name := range styleTransforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func applyShadow(s *models.Shape) {
	s.ShadowColor = shadowColor
	s.ShadowBlur = shadowBlur
	s.ShadowOffsetX = shadowOffset
	s.ShadowOffsetY = shadowOffset
}

func applyOutline(s *models.Shape) {
	border := outlineColor
	if darker, ok := darken(s.Color, outlineAmount); ok {
		border = darker
	}
	s.BorderColor = border
	s.BorderWidth = outlineWidth
}

func applyNeon(s *models.Shape) {
	s.Glow = true
	s.Color = neonFor(s.Color)
}

// neonFor подбирает неоновый цвет. Уже неоновые цвета сохраняются,
// остальные детерминированно проецируются в таблицу.
func neonFor(color string) string {
	for _, n := range neonColors {
		if strings.EqualFold(color, n) {
			return n
		}
	}
	r, g, b, ok := parseHexColor(color)
	if !ok {
		return neonColors[0]
	}
	return neonColors[(int(r)+int(g)+int(b))%len(neonColors)]
}

func applyGlass(s *models.Shape) {
	if s.Opacity == nil || *s.Opacity > glassOpacity {
		o := glassOpacity
		s.Opacity = &o
	}
}

func applyGradient(s *models.Shape) {
	s.Gradient = true
	base := s.Color
	if _, _, _, ok := parseHexColor(base); !ok {
		base = defaultBaseColor
	}
	lighter, _ := lighten(base, lightenAmount)
	s.GradientColor = lighter
}
