package formatter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/darkfeline/chronoplot/internal/core/plot"
	"github.com/darkfeline/chronoplot/internal/util"
)

// CSVFormatter writes one record per placed box
type CSVFormatter struct{}

func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

func (f *CSVFormatter) Format(w io.Writer, chart *plot.Chart) error {
	cw := csv.NewWriter(w)

	headers := []string{"Group", "Start", "Stop", "Row", "Height", "Slack", "Title"}
	if err := cw.Write(headers); err != nil {
		return err
	}

	for _, box := range chart.Boxes {
		record := []string{
			box.Event.Group,
			util.FormatTick(box.Event.Start),
			util.FormatTick(box.Event.Stop),
			strconv.Itoa(box.Row),
			strconv.Itoa(box.Height),
			strconv.Itoa(box.Slack),
			box.Event.Text,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
