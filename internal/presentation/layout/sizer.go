package layout

import (
	"os"

	"golang.org/x/term"

	"github.com/darkfeline/chronoplot/internal/util"
)

// Sizer answers questions about the terminal a diagram is printed to
type Sizer struct {
	fd int
}

// NewSizer creates a Sizer for f, usually os.Stdout
func NewSizer(f *os.File) *Sizer {
	return &Sizer{fd: int(f.Fd())}
}

// IsTerminal reports whether the output is an interactive terminal
func (s Sizer) IsTerminal() bool {
	return term.IsTerminal(s.fd)
}

// TerminalWidth returns the terminal width in columns. ok is false when the
// output is not a terminal.
func (s Sizer) TerminalWidth() (width int, ok bool) {
	if !s.IsTerminal() {
		return 0, false
	}
	width, _, err := term.GetSize(s.fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// Overflow returns how many columns the widest line extends past the
// terminal, or 0 when it fits or there is no terminal.
func (s Sizer) Overflow(lines []string) int {
	width, ok := s.TerminalWidth()
	if !ok {
		return 0
	}
	if over := MaxLineWidth(lines) - width; over > 0 {
		return over
	}
	return 0
}

// MaxLineWidth returns the display width of the widest line
func MaxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := util.GetDisplayWidth(line); w > max {
			max = w
		}
	}
	return max
}
