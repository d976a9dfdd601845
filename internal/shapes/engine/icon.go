package engine

import (
	"math"
	"sort"
	"strings"

	"shape-api/internal/shapes/models"
)

// ============================================================
// Icons
// ============================================================

const defaultIconSize = 100

var iconBuilders = map[string]func(cx, cy, size float64, color string) []models.Shape{
	"circle":   circleIcon,
	"square":   squareIcon,
	"triangle": triangleIcon,
	"diamond":  diamondIcon,
	"star":     starIcon,
	"heart":    heartIcon,
	"arrow":    arrowIcon,
	"cross":    crossIcon,
	"check":    checkIcon,
}

// GenerateIcon строит именованную пиктограмму из примитивов.
// Центр — (size/2, size/2), все размеры пропорциональны size.
func GenerateIcon(name string, size float64, color string) ([]models.Shape, error) {
	if size <= 0 {
		size = defaultIconSize
	}
	if color == "" {
		color = defaultBaseColor
	}
	if !models.ValidHexColor(color) {
		return nil, models.NewError(models.FieldError,
			"color must be in #rrggbb format, got %q", color)
	}
	build, ok := iconBuilders[name]
	if !ok {
		return nil, models.NewError(models.UnknownIcon,
			"unknown icon: %q (available: %s)", name, strings.Join(Icons(), ", "))
	}
	return build(size/2, size/2, size, color), nil
}

// Icons возвращает отсортированный список доступных пиктограмм.
func Icons() []string {
	names := make([]string, 0, len(iconBuilders))
	for name := range iconBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func circleIcon(cx, cy, size float64, color string) []models.Shape {
	return []models.Shape{{
		Type:   models.KindCircle,
		X:      cx,
		Y:      cy,
		Radius: size * 0.45,
		Color:  color,
	}}
}

func squareIcon(cx, cy, size float64, color string) []models.Shape {
	return []models.Shape{{
		Type:   models.KindRect,
		X:      cx - size*0.4,
		Y:      cy - size*0.4,
		Width:  size * 0.8,
		Height: size * 0.8,
		Color:  color,
	}}
}

func triangleIcon(cx, cy, size float64, color string) []models.Shape {
	return []models.Shape{{
		Type:   models.KindTriangle,
		X:      cx - size*0.45,
		Y:      cy - size*0.4,
		Width:  size * 0.9,
		Height: size * 0.8,
		Color:  color,
	}}
}

func diamondIcon(cx, cy, size float64, color string) []models.Shape {
	return []models.Shape{{
		Type: models.KindPolygon,
		X:    cx,
		Y:    cy,
		Points: []models.Point{
			{X: cx, Y: cy - size*0.45},
			{X: cx + size*0.45, Y: cy},
			{X: cx, Y: cy + size*0.45},
			{X: cx - size*0.45, Y: cy},
		},
		Color: color,
	}}
}

// starIcon строит пятиконечную звезду одним полигоном из 10 вершин,
// чередуя внешний и внутренний радиусы от верхней точки.
func starIcon(cx, cy, size float64, color string) []models.Shape {
	outer := size / 2
	inner := size / 5
	points := make([]models.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + math.Pi*float64(i)/5
		points = append(points, models.Point{
			X: cx + r*math.Cos(angle),
			Y: cy + r*math.Sin(angle),
		})
	}
	return []models.Shape{{
		Type:   models.KindPolygon,
		X:      cx,
		Y:      cy,
		Points: points,
		Color:  color,
	}}
}

// heartIcon собирает сердце из двух кругов и клина-полигона.
func heartIcon(cx, cy, size float64, color string) []models.Shape {
	lobe := size / 4
	lobeY := cy - size*0.15
	return []models.Shape{
		{Type: models.KindCircle, X: cx - size/4, Y: lobeY, Radius: lobe, Color: color},
		{Type: models.KindCircle, X: cx + size/4, Y: lobeY, Radius: lobe, Color: color},
		{
			Type: models.KindPolygon,
			X:    cx,
			Y:    cy,
			Points: []models.Point{
				{X: cx - size/2, Y: cy - size*0.05},
				{X: cx + size/2, Y: cy - size*0.05},
				{X: cx, Y: cy + size/2},
			},
			Color: color,
		},
	}
}

// arrowIcon — древко линией и наконечник полигоном, направление вправо.
func arrowIcon(cx, cy, size float64, color string) []models.Shape {
	return []models.Shape{
		{
			Type:  models.KindLine,
			X1:    cx - size/2,
			Y1:    cy,
			X2:    cx + size*0.15,
			Y2:    cy,
			Width: size * 0.08,
			Color: color,
		},
		{
			Type: models.KindPolygon,
			X:    cx + size*0.15,
			Y:    cy,
			Points: []models.Point{
				{X: cx + size*0.15, Y: cy - size*0.2},
				{X: cx + size/2, Y: cy},
				{X: cx + size*0.15, Y: cy + size*0.2},
			},
			Color: color,
		},
	}
}

func crossIcon(cx, cy, size float64, color string) []models.Shape {
	arm := size * 0.35
	stroke := size * 0.12
	return []models.Shape{
		{Type: models.KindLine, X1: cx - arm, Y1: cy - arm, X2: cx + arm, Y2: cy + arm, Width: stroke, Color: color},
		{Type: models.KindLine, X1: cx + arm, Y1: cy - arm, X2: cx - arm, Y2: cy + arm, Width: stroke, Color: color},
	}
}

func checkIcon(cx, cy, size float64, color string) []models.Shape {
	stroke := size * 0.12
	return []models.Shape{
		{Type: models.KindLine, X1: cx - size*0.4, Y1: cy + size*0.05, X2: cx - size*0.1, Y2: cy + size*0.35, Width: stroke, Color: color},
		{Type: models.KindLine, X1: cx - size*0.1, Y1: cy + size*0.35, X2: cx + size*0.45, Y2: cy - size*0.3, Width: stroke, Color: color},
	}
}
