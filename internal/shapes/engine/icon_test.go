package engine

import (
	"math"
	"testing"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIconUnknown(t *testing.T) {
	_, err := GenerateIcon("rocket", 100, "#2563eb")
	require.Error(t, err)
	assert.Equal(t, models.UnknownIcon, models.KindOf(err))
}

func TestGenerateIconRejectsBadColor(t *testing.T) {
	_, err := GenerateIcon("circle", 100, "red")
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
}

func TestGenerateIconDefaults(t *testing.T) {
	shapes, err := GenerateIcon("circle", 0, "")
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	s := shapes[0]
	assert.Equal(t, models.KindCircle, s.Type)
	assert.InDelta(t, 50.0, s.X, 1e-9)
	assert.InDelta(t, 50.0, s.Y, 1e-9)
	assert.InDelta(t, 45.0, s.Radius, 1e-9)
	assert.Equal(t, "#2563eb", s.Color)
}

func TestGenerateIconScalesWithSize(t *testing.T) {
	shapes, err := GenerateIcon("circle", 60, "#ff0000")
	require.NoError(t, err)
	s := shapes[0]
	assert.InDelta(t, 30.0, s.X, 1e-9)
	assert.InDelta(t, 30.0, s.Y, 1e-9)
	assert.InDelta(t, 27.0, s.Radius, 1e-9)
	assert.Equal(t, "#ff0000", s.Color)
}

func TestGenerateIconShapesAreValid(t *testing.T) {
	for _, icon := range Icons() {
		shapes, err := GenerateIcon(icon, 100, "#2563eb")
		require.NoError(t, err, icon)
		require.NotEmpty(t, shapes, icon)
		assert.NoError(t, geometry.ValidateAll(shapes), icon)
	}
}

func TestGenerateIconStaysInBox(t *testing.T) {
	const size = 100.0
	for _, icon := range Icons() {
		shapes, err := GenerateIcon(icon, size, "#2563eb")
		require.NoError(t, err, icon)
		for i, s := range shapes {
			b := geometry.BoundsOf(s)
			assert.GreaterOrEqual(t, b.MinX, 0.0, "%s shape %d", icon, i)
			assert.LessOrEqual(t, b.MaxX, size, "%s shape %d", icon, i)
			assert.GreaterOrEqual(t, b.MinY, 0.0, "%s shape %d", icon, i)
			assert.LessOrEqual(t, b.MaxY, size, "%s shape %d", icon, i)
		}
	}
}

func TestGenerateIconCentered(t *testing.T) {
	for _, icon := range []string{"circle", "square", "triangle", "diamond", "cross"} {
		shapes, err := GenerateIcon(icon, 100, "#2563eb")
		require.NoError(t, err, icon)
		total, ok := geometry.BoundsOfAll(shapes)
		require.True(t, ok, icon)
		assert.InDelta(t, 50.0, total.CenterX(), 1e-9, icon)
		assert.InDelta(t, 50.0, total.CenterY(), 1e-9, icon)
	}
}

func TestStarIconVertices(t *testing.T) {
	shapes, err := GenerateIcon("star", 100, "#eab308")
	require.NoError(t, err)
	require.Len(t, shapes, 1)

	star := shapes[0]
	assert.Equal(t, models.KindPolygon, star.Type)
	assert.Equal(t, "#eab308", star.Color)
	require.Len(t, star.Points, 10)

	// Верхний луч направлен строго вверх
	assert.InDelta(t, 50.0, star.Points[0].X, 1e-9)
	assert.InDelta(t, 0.0, star.Points[0].Y, 1e-9)

	// Вершины чередуют внешний и внутренний радиусы
	for i, p := range star.Points {
		dist := math.Hypot(p.X-50, p.Y-50)
		if i%2 == 0 {
			assert.InDelta(t, 50.0, dist, 1e-9, "vertex %d", i)
		} else {
			assert.InDelta(t, 20.0, dist, 1e-9, "vertex %d", i)
		}
	}
}

func TestHeartIconComposition(t *testing.T) {
	shapes, err := GenerateIcon("heart", 100, "#ef4444")
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	assert.Equal(t, models.KindCircle, shapes[0].Type)
	assert.Equal(t, models.KindCircle, shapes[1].Type)
	assert.Equal(t, models.KindPolygon, shapes[2].Type)

	// Доли симметричны относительно вертикальной оси
	assert.InDelta(t, 25.0, shapes[0].X, 1e-9)
	assert.InDelta(t, 75.0, shapes[1].X, 1e-9)
	assert.Equal(t, shapes[0].Y, shapes[1].Y)
	assert.Equal(t, shapes[0].Radius, shapes[1].Radius)
}

func TestArrowIconComposition(t *testing.T) {
	shapes, err := GenerateIcon("arrow", 100, "#2563eb")
	require.NoError(t, err)
	require.Len(t, shapes, 2)

	shaft := shapes[0]
	head := shapes[1]
	assert.Equal(t, models.KindLine, shaft.Type)
	assert.Equal(t, models.KindPolygon, head.Type)

	// Древко горизонтально, наконечник доходит до правого края
	assert.Equal(t, shaft.Y1, shaft.Y2)
	assert.InDelta(t, 100.0, head.Points[1].X, 1e-9)
	assert.InDelta(t, 50.0, head.Points[1].Y, 1e-9)
}

func TestStrokeIcons(t *testing.T) {
	for _, icon := range []string{"cross", "check"} {
		shapes, err := GenerateIcon(icon, 100, "#111827")
		require.NoError(t, err, icon)
		require.Len(t, shapes, 2, icon)
		for _, s := range shapes {
			assert.Equal(t, models.KindLine, s.Type, icon)
			assert.InDelta(t, 12.0, s.Width, 1e-9, icon)
		}
	}
}

func TestIconsSorted(t *testing.T) {
	assert.Equal(t, []string{
		"arrow", "check", "circle", "cross", "diamond",
		"heart", "square", "star", "triangle",
	}, Icons())
}
