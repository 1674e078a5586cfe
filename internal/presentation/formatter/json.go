package formatter

import (
	"io"

	"github.com/bytedance/sonic"

	"github.com/darkfeline/chronoplot/internal/core/plot"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(w io.Writer, chart *plot.Chart) error {
	data, err := sonic.ConfigStd.MarshalIndent(chart, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
