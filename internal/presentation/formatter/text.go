package formatter

import (
	"bufio"
	"io"

	"github.com/darkfeline/chronoplot/internal/core/plot"
)

// TextFormatter prints the diagram, one row per line
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (f *TextFormatter) Format(w io.Writer, chart *plot.Chart) error {
	bw := bufio.NewWriter(w)
	for _, line := range chart.Lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
