package engine

import (
	"fmt"
	"math"
)

// ============================================================
// Color helpers
// ============================================================

// parseHexColor разбирает #rrggbb на компоненты.
func parseHexColor(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	r, ok = hexByte(s[1], s[2])
	if !ok {
		return 0, 0, 0, false
	}
	g, ok = hexByte(s[3], s[4])
	if !ok {
		return 0, 0, 0, false
	}
	b, ok = hexByte(s[5], s[6])
	if !ok {
		return 0, 0, 0, false
	}
	return r, g, b, true
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok := hexVal(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexVal(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func formatHexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// darken затемняет цвет на долю amount (0..1).
func darken(hex string, amount float64) (string, bool) {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return "", false
	}
	f := 1 - amount
	return formatHexColor(scaleChannel(r, f), scaleChannel(g, f), scaleChannel(b, f)), true
}

// lighten сдвигает цвет к белому на долю amount (0..1).
func lighten(hex string, amount float64) (string, bool) {
	r, g, b, ok := parseHexColor(hex)
	if !ok {
		return "", false
	}
	return formatHexColor(liftChannel(r, amount), liftChannel(g, amount), liftChannel(b, amount)), true
}

func scaleChannel(c uint8, f float64) uint8 {
	return uint8(math.Round(float64(c) * f))
}

func liftChannel(c uint8, amount float64) uint8 {
	return uint8(math.Round(float64(c) + (255-float64(c))*amount))
}
