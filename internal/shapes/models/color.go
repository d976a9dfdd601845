package models

import "regexp"

// ============================================================
// Colors
// ============================================================

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidHexColor проверяет, что строка — цвет вида #rrggbb.
func ValidHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}
