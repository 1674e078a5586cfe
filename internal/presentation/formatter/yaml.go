package formatter

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/darkfeline/chronoplot/internal/core/plot"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) Format(w io.Writer, chart *plot.Chart) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(chart); err != nil {
		return err
	}
	return enc.Close()
}
