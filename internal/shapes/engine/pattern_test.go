package engine

import (
	"fmt"
	"testing"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePatternUnknown(t *testing.T) {
	_, err := GeneratePattern("plaid", 10, 0, 0)
	require.Error(t, err)
	assert.Equal(t, models.UnknownPattern, models.KindOf(err))
}

func TestGeneratePatternExactCount(t *testing.T) {
	for _, pattern := range Patterns() {
		for _, count := range []int{1, 5, 12, 30} {
			t.Run(fmt.Sprintf("%s/%d", pattern, count), func(t *testing.T) {
				shapes, err := GeneratePattern(pattern, count, 0, 0)
				require.NoError(t, err)
				assert.Len(t, shapes, count)
			})
		}
	}
}

func TestGeneratePatternDefaultCount(t *testing.T) {
	for _, pattern := range Patterns() {
		shapes, err := GeneratePattern(pattern, 0, 0, 0)
		require.NoError(t, err)
		assert.Len(t, shapes, 10, pattern)

		shapes, err = GeneratePattern(pattern, -3, 0, 0)
		require.NoError(t, err)
		assert.Len(t, shapes, 10, pattern)
	}
}

func TestGeneratePatternShapesAreValid(t *testing.T) {
	for _, pattern := range Patterns() {
		shapes, err := GeneratePattern(pattern, 25, 800, 400)
		require.NoError(t, err, pattern)
		assert.NoError(t, geometry.ValidateAll(shapes), pattern)
	}
}

func TestGeneratePatternStaysOnCanvas(t *testing.T) {
	const w, h = 800.0, 400.0
	for _, pattern := range Patterns() {
		shapes, err := GeneratePattern(pattern, 25, w, h)
		require.NoError(t, err, pattern)
		for i, s := range shapes {
			b := geometry.BoundsOf(s)
			assert.GreaterOrEqual(t, b.MinX, 0.0-s.Radius, "%s shape %d", pattern, i)
			assert.LessOrEqual(t, b.MaxX, w+s.Radius, "%s shape %d", pattern, i)
			assert.GreaterOrEqual(t, b.MinY, 0.0-s.Radius, "%s shape %d", pattern, i)
			assert.LessOrEqual(t, b.MaxY, h+s.Radius, "%s shape %d", pattern, i)
		}
	}
}

func TestCheckerboardAlternates(t *testing.T) {
	shapes, err := GeneratePattern("checkerboard", 10, 1200, 600)
	require.NoError(t, err)
	require.Len(t, shapes, 10)

	// 4 колонки x 3 строки, клетка 300x200
	assert.Equal(t, models.KindRect, shapes[0].Type)
	assert.Equal(t, 0.0, shapes[0].X)
	assert.Equal(t, 300.0, shapes[0].Width)
	assert.Equal(t, 200.0, shapes[0].Height)
	assert.Equal(t, "#111827", shapes[0].Color)
	assert.Equal(t, "#e5e7eb", shapes[1].Color)

	// Первая клетка второй строки тоже светлая
	assert.Equal(t, 200.0, shapes[4].Y)
	assert.Equal(t, "#e5e7eb", shapes[4].Color)
}

func TestDotsRingLayout(t *testing.T) {
	shapes, err := GeneratePattern("dots", 12, 1200, 600)
	require.NoError(t, err)
	require.Len(t, shapes, 12)

	center := shapes[0]
	assert.Equal(t, models.KindCircle, center.Type)
	assert.InDelta(t, 600.0, center.X, 1e-9)
	assert.InDelta(t, 300.0, center.Y, 1e-9)
	assert.Equal(t, 8.0, center.Radius)

	for _, s := range shapes {
		assert.Equal(t, "#2563eb", s.Color)
		assert.Equal(t, 8.0, s.Radius)
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.LessOrEqual(t, s.X, 1200.0)
		assert.GreaterOrEqual(t, s.Y, 0.0)
		assert.LessOrEqual(t, s.Y, 600.0)
	}
}

func TestWavePattern(t *testing.T) {
	shapes, err := GeneratePattern("wave", 1, 1200, 600)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.InDelta(t, 600.0, shapes[0].X, 1e-9)
	assert.InDelta(t, 300.0, shapes[0].Y, 1e-9)

	shapes, err = GeneratePattern("wave", 20, 1200, 600)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, shapes[0].X, 1e-9)
	assert.InDelta(t, 1200.0, shapes[19].X, 1e-9)
	for _, s := range shapes {
		assert.Equal(t, models.KindCircle, s.Type)
		assert.Equal(t, 10.0, s.Radius)
		// Синусоида держится в средней полосе холста
		assert.GreaterOrEqual(t, s.Y, 150.0)
		assert.LessOrEqual(t, s.Y, 450.0)
	}
}

func TestDiagonalPattern(t *testing.T) {
	shapes, err := GeneratePattern("diagonal", 3, 1200, 600)
	require.NoError(t, err)
	require.Len(t, shapes, 3)

	assert.Equal(t, 0.0, shapes[0].X)
	assert.Equal(t, 0.0, shapes[0].Y)
	assert.InDelta(t, 580.0, shapes[1].X, 1e-9)
	assert.InDelta(t, 280.0, shapes[1].Y, 1e-9)
	assert.InDelta(t, 1160.0, shapes[2].X, 1e-9)
	assert.InDelta(t, 560.0, shapes[2].Y, 1e-9)

	for _, s := range shapes {
		assert.Equal(t, 40.0, s.Width)
		assert.Equal(t, 40.0, s.Height)
		assert.Equal(t, "#059669", s.Color)
	}
}

func TestLinesPattern(t *testing.T) {
	shapes, err := GeneratePattern("lines", 4, 1200, 600)
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	want := []float64{150, 450, 750, 1050}
	for i, s := range shapes {
		assert.Equal(t, models.KindLine, s.Type)
		assert.InDelta(t, want[i], s.X1, 1e-9)
		assert.InDelta(t, want[i], s.X2, 1e-9)
		assert.Equal(t, 0.0, s.Y1)
		assert.Equal(t, 600.0, s.Y2)
		assert.Equal(t, 2.0, s.Width)
		assert.Equal(t, "#64748b", s.Color)
	}
}

func TestGeneratePatternDefaultCanvas(t *testing.T) {
	shapes, err := GeneratePattern("lines", 1, -1, -1)
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.InDelta(t, 600.0, shapes[0].X1, 1e-9)
	assert.Equal(t, 600.0, shapes[0].Y2)
}

func TestGeneratePatternDeterministic(t *testing.T) {
	for _, pattern := range Patterns() {
		first, err := GeneratePattern(pattern, 17, 900, 500)
		require.NoError(t, err, pattern)
		second, err := GeneratePattern(pattern, 17, 900, 500)
		require.NoError(t, err, pattern)
		assert.Equal(t, first, second, pattern)
	}
}
