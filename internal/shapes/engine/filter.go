package engine

import (
	"strings"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"
)

// ============================================================
// Filters
// ============================================================

const (
	filterAll   = "all"
	filterType  = "type"
	filterColor = "color"
)

// Filter — разобранный предикат пакетного редактирования.
type Filter struct {
	Kind  string
	Value string
}

// ParseFilter разбирает строку фильтра: "all", "type:<kind>" или "color:#rrggbb".
func ParseFilter(raw string) (Filter, error) {
	switch {
	case raw == filterAll:
		return Filter{Kind: filterAll}, nil

	case strings.HasPrefix(raw, "type:"):
		kind := strings.TrimPrefix(raw, "type:")
		if !geometry.KnownKind(kind) {
			return Filter{}, models.NewError(models.InvalidFilter,
				"unknown shape type in filter: %q", kind)
		}
		return Filter{Kind: filterType, Value: kind}, nil

	case strings.HasPrefix(raw, "color:"):
		hex := strings.TrimPrefix(raw, "color:")
		if !models.ValidHexColor(hex) {
			return Filter{}, models.NewError(models.InvalidFilter,
				"filter color must be in #rrggbb format, got %q", hex)
		}
		return Filter{Kind: filterColor, Value: strings.ToLower(hex)}, nil

	default:
		return Filter{}, models.NewError(models.InvalidFilter,
			`invalid filter: %q (expected "all", "type:<kind>" or "color:#rrggbb")`, raw)
	}
}

// Matches проверяет фигуру на соответствие фильтру.
func (f Filter) Matches(s models.Shape) bool {
	switch f.Kind {
	case filterAll:
		return true
	case filterType:
		return s.Type == f.Value
	case filterColor:
		return strings.EqualFold(s.Color, f.Value)
	}
	return false
}
