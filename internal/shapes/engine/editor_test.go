package engine

import (
	"testing"

	"shape-api/internal/shapes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canvasFixture() []models.Shape {
	return []models.Shape{
		{Type: models.KindCircle, X: 100, Y: 100, Radius: 50, Color: "#ef4444"},
		{Type: models.KindRect, X: 200, Y: 50, Width: 80, Height: 40, Color: "#3b82f6"},
		{Type: models.KindCircle, X: 400, Y: 300, Radius: 20, Color: "#22c55e"},
	}
}

func TestModifyShape(t *testing.T) {
	src := canvasFixture()
	out, modified, err := ModifyShape(src, 0, map[string]any{
		"radius": 75.0,
		"color":  "#000000",
	})
	require.NoError(t, err)

	assert.Equal(t, 75.0, modified.Radius)
	assert.Equal(t, "#000000", modified.Color)
	assert.Equal(t, modified, out[0])

	// Исходный список не меняется
	assert.Equal(t, canvasFixture(), src)
	// Остальные фигуры переносятся как есть
	assert.Equal(t, src[1], out[1])
	assert.Equal(t, src[2], out[2])
}

func TestModifyShapeIndexOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3, 100} {
		_, _, err := ModifyShape(canvasFixture(), index, map[string]any{"x": 1.0})
		require.Error(t, err, index)
		assert.Equal(t, models.IndexOutOfRange, models.KindOf(err), index)
	}

	_, _, err := ModifyShape(canvasFixture(), 3, nil)
	assert.EqualError(t, err, "shape index 3 out of range [0, 3)")
}

func TestModifyShapeTypeImmutable(t *testing.T) {
	_, _, err := ModifyShape(canvasFixture(), 0, map[string]any{"type": "rect"})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
	assert.EqualError(t, err, "shape type cannot be modified")
}

func TestModifyShapeRejectsForeignField(t *testing.T) {
	_, _, err := ModifyShape(canvasFixture(), 1, map[string]any{"radius": 10.0})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
	assert.EqualError(t, err, `field "radius" is not valid for shape type "rect"`)
}

func TestModifyShapeValidatesResult(t *testing.T) {
	_, _, err := ModifyShape(canvasFixture(), 0, map[string]any{"radius": -5.0})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
}

func TestModifyShapeCoercion(t *testing.T) {
	// JSON-числа приходят как float64, но целые тоже принимаются
	out, _, err := ModifyShape(canvasFixture(), 0, map[string]any{"x": 42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, out[0].X)

	_, _, err = ModifyShape(canvasFixture(), 0, map[string]any{"x": "far left"})
	require.Error(t, err)
	assert.EqualError(t, err, `field "x" must be a number`)

	_, _, err = ModifyShape(canvasFixture(), 0, map[string]any{"color": 5.0})
	require.Error(t, err)
	assert.EqualError(t, err, `field "color" must be a string`)

	_, _, err = ModifyShape(canvasFixture(), 0, map[string]any{"glow": "yes"})
	require.Error(t, err)
	assert.EqualError(t, err, `field "glow" must be a boolean`)
}

func TestModifyShapeFirstErrorIsStable(t *testing.T) {
	mods := map[string]any{
		"x":     "bad",
		"color": 5.0,
		"y":     "bad",
	}
	// Ключи обходятся по алфавиту, первой всегда падает color
	for i := 0; i < 10; i++ {
		_, _, err := ModifyShape(canvasFixture(), 0, mods)
		require.Error(t, err)
		assert.EqualError(t, err, `field "color" must be a string`)
	}
}

func TestModifyShapeOpacityPointer(t *testing.T) {
	out, _, err := ModifyShape(canvasFixture(), 0, map[string]any{"opacity": 0.0})
	require.NoError(t, err)
	require.NotNil(t, out[0].Opacity)
	assert.Equal(t, 0.0, *out[0].Opacity)
}

func TestModifyShapePoints(t *testing.T) {
	src := []models.Shape{{
		Type:   models.KindPolygon,
		Points: []models.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}},
	}}

	// Пары приходят из JSON как []any из двух чисел
	out, _, err := ModifyShape(src, 0, map[string]any{
		"points": []any{
			[]any{0.0, 0.0},
			[]any{20.0, 0.0},
			[]any{10.0, 16.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []models.Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 10, Y: 16}}, out[0].Points)

	_, _, err = ModifyShape(src, 0, map[string]any{"points": []any{[]any{1.0}}})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))

	// Урезание до двух вершин не проходит проверку полигона
	_, _, err = ModifyShape(src, 0, map[string]any{"points": []any{[]any{0.0, 0.0}, []any{1.0, 1.0}}})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
}

func TestModifyShapeDash(t *testing.T) {
	src := []models.Shape{{Type: models.KindLine, X1: 0, Y1: 0, X2: 10, Y2: 10}}

	out, _, err := ModifyShape(src, 0, map[string]any{"dash": []any{4.0, 2.0}})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 2}, out[0].Dash)

	_, _, err = ModifyShape(src, 0, map[string]any{"dash": []any{"4"}})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
}

func TestDeleteShape(t *testing.T) {
	src := canvasFixture()
	out, deleted, err := DeleteShape(src, 1)
	require.NoError(t, err)

	assert.Equal(t, src[1], deleted)
	require.Len(t, out, 2)
	assert.Equal(t, src[0], out[0])
	assert.Equal(t, src[2], out[1])
	assert.Equal(t, canvasFixture(), src)
}

func TestDeleteShapeIndexOutOfRange(t *testing.T) {
	for _, index := range []int{-1, 3} {
		_, _, err := DeleteShape(canvasFixture(), index)
		require.Error(t, err, index)
		assert.Equal(t, models.IndexOutOfRange, models.KindOf(err), index)
	}

	_, _, err := DeleteShape(nil, 0)
	require.Error(t, err)
	assert.EqualError(t, err, "shape index 0 out of range [0, 0)")
}

func TestDeleteShapeLast(t *testing.T) {
	out, deleted, err := DeleteShape([]models.Shape{{Type: models.KindCircle, Radius: 5}}, 0)
	require.NoError(t, err)
	assert.Equal(t, models.KindCircle, deleted.Type)
	assert.Empty(t, out)
}

func TestDeleteShapeRoundTrip(t *testing.T) {
	src := canvasFixture()
	out, deleted, err := DeleteShape(src, 1)
	require.NoError(t, err)

	// Возврат удаленной фигуры на место восстанавливает исходный список
	restored := make([]models.Shape, 0, len(src))
	restored = append(restored, out[:1]...)
	restored = append(restored, deleted)
	restored = append(restored, out[1:]...)
	assert.Equal(t, src, restored)
}

func TestBatchModifyAll(t *testing.T) {
	src := canvasFixture()
	out, affected, err := BatchModify(src, "all", map[string]any{"color": "#111111"})
	require.NoError(t, err)

	assert.Equal(t, 3, affected)
	for _, s := range out {
		assert.Equal(t, "#111111", s.Color)
	}
	assert.Equal(t, canvasFixture(), src)
}

func TestBatchModifyByType(t *testing.T) {
	out, affected, err := BatchModify(canvasFixture(), "type:circle", map[string]any{"color": "#000000"})
	require.NoError(t, err)

	assert.Equal(t, 2, affected)
	assert.Equal(t, "#000000", out[0].Color)
	assert.Equal(t, "#3b82f6", out[1].Color)
	assert.Equal(t, "#000000", out[2].Color)
}

func TestBatchModifyByColor(t *testing.T) {
	// Фильтр по цвету нечувствителен к регистру
	out, affected, err := BatchModify(canvasFixture(), "color:#EF4444", map[string]any{"opacity": 0.5})
	require.NoError(t, err)

	assert.Equal(t, 1, affected)
	require.NotNil(t, out[0].Opacity)
	assert.Nil(t, out[1].Opacity)
}

func TestBatchModifyNoMatchesIsSuccess(t *testing.T) {
	src := canvasFixture()
	out, affected, err := BatchModify(src, "type:text", map[string]any{"color": "#000000"})
	require.NoError(t, err)
	assert.Equal(t, 0, affected)
	assert.Equal(t, src, out)
}

func TestBatchModifyInvalidFilter(t *testing.T) {
	_, _, err := BatchModify(canvasFixture(), "size:big", nil)
	require.Error(t, err)
	assert.Equal(t, models.InvalidFilter, models.KindOf(err))
}

func TestBatchModifyAllMatchesSequentialEdits(t *testing.T) {
	src := canvasFixture()
	mods := map[string]any{"color": "#123456", "opacity": 0.8}

	batched, affected, err := BatchModify(src, "all", mods)
	require.NoError(t, err)
	require.Equal(t, len(src), affected)

	sequential := src
	for i := range src {
		sequential, _, err = ModifyShape(sequential, i, mods)
		require.NoError(t, err)
	}
	assert.Equal(t, sequential, batched)
}

func TestBatchModifyMatchesSequentialEdits(t *testing.T) {
	src := canvasFixture()
	mods := map[string]any{"color": "#abcdef", "opacity": 0.8}

	batched, affected, err := BatchModify(src, "type:circle", mods)
	require.NoError(t, err)
	require.Equal(t, 2, affected)

	sequential := src
	for _, i := range []int{0, 2} {
		sequential, _, err = ModifyShape(sequential, i, mods)
		require.NoError(t, err)
	}
	assert.Equal(t, sequential, batched)
}

func TestBatchModifyStopsOnFirstInvalid(t *testing.T) {
	_, _, err := BatchModify(canvasFixture(), "type:circle", map[string]any{"radius": -1.0})
	require.Error(t, err)
	assert.Equal(t, models.FieldError, models.KindOf(err))
}
