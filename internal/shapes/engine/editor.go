package engine

import (
	"sort"

	"shape-api/internal/shapes/geometry"
	"shape-api/internal/shapes/models"
)

// ============================================================
// Editing
// ============================================================

// ModifyShape применяет изменения к фигуре по индексу.
// Возвращает новый список и измененную фигуру.
func ModifyShape(shapes []models.Shape, index int, mods map[string]any) ([]models.Shape, models.Shape, error) {
	if index < 0 || index >= len(shapes) {
		return nil, models.Shape{}, models.NewError(models.IndexOutOfRange,
			"shape index %d out of range [0, %d)", index, len(shapes))
	}
	out := models.CloneAll(shapes)
	if err := mergeFields(&out[index], mods); err != nil {
		return nil, models.Shape{}, err
	}
	if err := geometry.Validate(out[index]); err != nil {
		return nil, models.Shape{}, err
	}
	return out, out[index].Clone(), nil
}

// DeleteShape удаляет фигуру по индексу.
// Возвращает новый список и удаленную фигуру.
func DeleteShape(shapes []models.Shape, index int) ([]models.Shape, models.Shape, error) {
	if index < 0 || index >= len(shapes) {
		return nil, models.Shape{}, models.NewError(models.IndexOutOfRange,
			"shape index %d out of range [0, %d)", index, len(shapes))
	}
	out := make([]models.Shape, 0, len(shapes)-1)
	for i, s := range shapes {
		if i == index {
			continue
		}
		out = append(out, s.Clone())
	}
	return out, shapes[index].Clone(), nil
}

// BatchModify применяет изменения ко всем фигурам, подходящим под фильтр.
// Возвращает новый список и число измененных фигур. Пустая выборка — не ошибка.
func BatchModify(shapes []models.Shape, filterSpec string, mods map[string]any) ([]models.Shape, int, error) {
	filter, err := ParseFilter(filterSpec)
	if err != nil {
		return nil, 0, err
	}
	out := models.CloneAll(shapes)
	affected := 0
	for i := range out {
		if !filter.Matches(out[i]) {
			continue
		}
		if err := mergeFields(&out[i], mods); err != nil {
			return nil, 0, err
		}
		if err := geometry.Validate(out[i]); err != nil {
			return nil, 0, err
		}
		affected++
	}
	return out, affected, nil
}

// mergeFields накладывает изменения на фигуру с приведением типов.
// Ключи обходятся в алфавитном порядке, поэтому первая ошибка стабильна.
func mergeFields(s *models.Shape, mods map[string]any) error {
	keys := make([]string, 0, len(mods))
	for k := range mods {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key == "type" {
			return models.NewError(models.FieldError, "shape type cannot be modified")
		}
		if !geometry.AllowedField(s.Type, key) {
			return models.NewError(models.FieldError,
				"field %q is not valid for shape type %q", key, s.Type)
		}
		if err := setField(s, key, mods[key]); err != nil {
			return err
		}
	}
	return nil
}

func setField(s *models.Shape, key string, value any) error {
	switch key {
	case "x":
		return setFloat(&s.X, key, value)
	case "y":
		return setFloat(&s.Y, key, value)
	case "x1":
		return setFloat(&s.X1, key, value)
	case "y1":
		return setFloat(&s.Y1, key, value)
	case "x2":
		return setFloat(&s.X2, key, value)
	case "y2":
		return setFloat(&s.Y2, key, value)
	case "radius":
		return setFloat(&s.Radius, key, value)
	case "width":
		return setFloat(&s.Width, key, value)
	case "height":
		return setFloat(&s.Height, key, value)
	case "fontSize":
		return setFloat(&s.FontSize, key, value)
	case "borderWidth":
		return setFloat(&s.BorderWidth, key, value)
	case "shadowBlur":
		return setFloat(&s.ShadowBlur, key, value)
	case "shadowOffsetX":
		return setFloat(&s.ShadowOffsetX, key, value)
	case "shadowOffsetY":
		return setFloat(&s.ShadowOffsetY, key, value)
	case "opacity":
		f, ok := asFloat(value)
		if !ok {
			return numberFieldError(key)
		}
		s.Opacity = &f
		return nil
	case "points":
		points, err := asPoints(value)
		if err != nil {
			return err
		}
		s.Points = points
		return nil
	case "dash":
		dash, err := asFloatSlice(value)
		if err != nil {
			return err
		}
		s.Dash = dash
		return nil
	case "text":
		return setString(&s.Text, key, value)
	case "fontFamily":
		return setString(&s.FontFamily, key, value)
	case "color":
		return setString(&s.Color, key, value)
	case "borderColor":
		return setString(&s.BorderColor, key, value)
	case "shadowColor":
		return setString(&s.ShadowColor, key, value)
	case "gradientColor":
		return setString(&s.GradientColor, key, value)
	case "glow":
		return setBool(&s.Glow, key, value)
	case "gradient":
		return setBool(&s.Gradient, key, value)
	}
	return models.NewError(models.FieldError, "unsupported field %q", key)
}

func setFloat(dst *float64, key string, value any) error {
	f, ok := asFloat(value)
	if !ok {
		return numberFieldError(key)
	}
	*dst = f
	return nil
}

func setString(dst *string, key string, value any) error {
	str, ok := value.(string)
	if !ok {
		return models.NewError(models.FieldError, "field %q must be a string", key)
	}
	*dst = str
	return nil
}

func setBool(dst *bool, key string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return models.NewError(models.FieldError, "field %q must be a boolean", key)
	}
	*dst = b
	return nil
}

func numberFieldError(key string) error {
	return models.NewError(models.FieldError, "field %q must be a number", key)
}

// asFloat приводит JSON-число к float64.
func asFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asPoints(value any) ([]models.Point, error) {
	switch points := value.(type) {
	case []models.Point:
		return append([]models.Point(nil), points...), nil
	case []any:
		out := make([]models.Point, 0, len(points))
		for i, raw := range points {
			pair, ok := raw.([]any)
			if !ok || len(pair) != 2 {
				return nil, models.NewError(models.FieldError,
					"points[%d] must be a [x, y] pair", i)
			}
			x, okX := asFloat(pair[0])
			y, okY := asFloat(pair[1])
			if !okX || !okY {
				return nil, models.NewError(models.FieldError,
					"points[%d] must contain numbers", i)
			}
			out = append(out, models.Point{X: x, Y: y})
		}
		return out, nil
	}
	return nil, models.NewError(models.FieldError, `field "points" must be a list of [x, y] pairs`)
}

func asFloatSlice(value any) ([]float64, error) {
	switch values := value.(type) {
	case []float64:
		return append([]float64(nil), values...), nil
	case []any:
		out := make([]float64, 0, len(values))
		for i, raw := range values {
			f, ok := asFloat(raw)
			if !ok {
				return nil, models.NewError(models.FieldError,
					"dash[%d] must be a number", i)
			}
			out = append(out, f)
		}
		return out, nil
	}
	return nil, models.NewError(models.FieldError, `field "dash" must be a list of numbers`)
}
