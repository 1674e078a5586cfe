package plot

import (
	"fmt"
	"strings"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/util"
)

// Box is the rendered form of one event
type Box struct {
	Width  int
	Height int
	Lines  []string
}

// BoxHeight is the number of rows a box spans: both endpoints of its duration
// are included.
func BoxHeight(e model.Event, scalar float64) int {
	return scaled(e.Duration(), scalar) + 1
}

// FormatBox draws e as a width-wide box of BoxHeight rows with the wrapped
// title centered in it. An odd blank row goes below the text.
func FormatBox(e model.Event, width int, scalar float64) (Box, error) {
	textWidth := width - Margin
	if textWidth < 1 {
		return Box{}, fmt.Errorf("%w: box width %d leaves no room for text", ErrLayoutInfeasible, width)
	}

	height := BoxHeight(e, scalar)
	interior := height - BorderRows
	text := Wrap(e.Text, textWidth)
	if len(text) > interior {
		return Box{}, fmt.Errorf("%w: %q needs %d rows but its box has %d",
			ErrLayoutInfeasible, e.Text, len(text), max(interior, 0))
	}

	rule := "+" + strings.Repeat("-", width-2) + "+"
	empty := "|" + util.Blank(width-2) + "|"

	lines := make([]string, 0, height)
	lines = append(lines, rule)
	top := (interior - len(text)) / 2
	for i := 0; i < interior; i++ {
		j := i - top
		if j < 0 || j >= len(text) {
			lines = append(lines, empty)
			continue
		}
		if util.GetDisplayWidth(text[j]) > textWidth {
			return Box{}, fmt.Errorf("%w: %q does not fit in %d columns", ErrLayoutInfeasible, text[j], textWidth)
		}
		lines = append(lines, "| "+util.Center(text[j], textWidth)+" |")
	}
	lines = append(lines, rule)

	return Box{Width: width, Height: height, Lines: lines}, nil
}
