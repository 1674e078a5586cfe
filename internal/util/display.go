package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences used by watch mode
const (
	ClearScreen    = "\033[2J"
	MoveCursorHome = "\033[H"
)

// GetDisplayWidth calculates the display width of a string in terminal cells
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads s with spaces up to width cells. Strings already at least
// width wide are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - GetDisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft right-aligns s within width cells
func PadLeft(s string, width int) string {
	gap := width - GetDisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// Center places s in the middle of width cells. An odd leftover cell goes to
// the right.
func Center(s string, width int) string {
	gap := width - GetDisplayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Blank returns width spaces
func Blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}
