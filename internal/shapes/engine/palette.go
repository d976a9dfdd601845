package engine

import (
	"sort"
	"strings"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Palettes
// ============================================================

var palettes = map[string][]string{
	"vibrant": {"#ef4444", "#f97316", "#eab308", "#22c55e", "#3b82f6", "#a855f7"},
	"pastel":  {"#fecaca", "#fed7aa", "#fef08a", "#bbf7d0", "#bfdbfe", "#e9d5ff"},
	"dark":    {"#111827", "#1f2937", "#374151", "#4b5563", "#6b7280", "#9ca3af"},
	"earth":   {"#78350f", "#92400e", "#b45309", "#a16207", "#4d7c0f", "#3f6212"},
	"ocean":   {"#0c4a6e", "#075985", "#0369a1", "#0284c7", "#0ea5e9", "#67e8f9"},
	"sunset":  {"#7c2d12", "#c2410c", "#ea580c", "#fb923c", "#fdba74", "#fecdd3"},
}

// Palette возвращает копию фиксированной палитры из шести цветов.
func Palette(scheme string) ([]string, error) {
	colors, ok := palettes[scheme]
	if !ok {
		return nil, models.NewError(models.UnknownScheme,
			"unknown color scheme: %q (available: %s)", scheme, strings.Join(Schemes(), ", "))
	}
	return append([]string(nil), colors...), nil
}

// Schemes возвращает отсортированный список доступных схем.
func Schemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
