package formatter

import (
	"fmt"
	"io"

	"github.com/gosuri/uitable"

	"github.com/darkfeline/chronoplot/internal/core/plot"
	"github.com/darkfeline/chronoplot/internal/util"
)

// SummaryFormatter prints a table of box placements and the solved scalar
// instead of the diagram.
type SummaryFormatter struct {
	maxTitleWidth uint
}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{maxTitleWidth: 40}
}

func (f *SummaryFormatter) Format(w io.Writer, chart *plot.Chart) error {
	tbl := uitable.New()
	tbl.MaxColWidth = f.maxTitleWidth
	tbl.AddRow("GROUP", "START", "STOP", "ROW", "ROWS", "SLACK", "TITLE")

	tight := 0
	for _, box := range chart.Boxes {
		if box.Slack == 0 {
			tight++
		}
		tbl.AddRow(
			box.Event.Group,
			util.FormatTick(box.Event.Start),
			util.FormatTick(box.Event.Stop),
			box.Row,
			box.Height,
			box.Slack,
			box.Event.Text,
		)
	}

	if _, err := fmt.Fprintln(w, tbl.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nscalar %s, %d rows, %d groups, %d events, %d tight\n",
		util.FormatScalar(chart.Scalar), len(chart.Lines), len(chart.Groups), len(chart.Boxes), tight)
	return err
}
