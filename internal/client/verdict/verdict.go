// Package verdict maps service classifications onto presentation attributes.
// The mapping is total: values the service has never returned before still
// resolve to the neutral fallback instead of failing.
package verdict

import (
	"strconv"

	"github.com/truthguard/truthguard/internal/common"
)

// Color is the display color associated with a classification.
type Color string

const (
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorGray   Color = "gray"
)

// StatusColor returns the color for a classification. Unknown values,
// including empty strings and unexpected casing, map to gray.
func StatusColor(classification string) Color {
	switch classification {
	case common.ClassificationReal:
		return ColorGreen
	case common.ClassificationFake:
		return ColorRed
	case common.ClassificationMisleading:
		return ColorOrange
	default:
		return ColorGray
	}
}

// StatusIcon returns the terminal glyph for a classification. Unknown values
// map to the neutral icon.
func StatusIcon(classification string) string {
	switch classification {
	case common.ClassificationReal:
		return "✔"
	case common.ClassificationFake:
		return "✖"
	case common.ClassificationMisleading:
		return "⚠"
	default:
		return "•"
	}
}

// ansi codes for terminal rendering.
var ansi = map[Color]string{
	ColorGreen:  "\033[32m",
	ColorRed:    "\033[31m",
	ColorOrange: "\033[33m",
	ColorGray:   "\033[90m",
}

const ansiReset = "\033[0m"

// Colorize wraps s in the ANSI escape for the classification's color.
func Colorize(classification, s string) string {
	return ansi[StatusColor(classification)] + s + ansiReset
}

// FormatConfidence renders a 0-100 confidence value with exactly one decimal
// place and a percent sign: 73 -> "73.0%", 42.666 -> "42.7%".
func FormatConfidence(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
