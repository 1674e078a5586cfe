package plot

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Wrap splits text into lines of at most width cells. Runs of whitespace
// collapse to one space; words longer than width are broken hard.
func Wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" || width < 1 {
		return nil
	}

	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}
