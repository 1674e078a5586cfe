package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/darkfeline/chronoplot/internal/core/plot"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted --output values
var Formats = []string{"text", "json", "yaml", "csv", "summary"}

// Formatter writes a rendered chart in one output format
type Formatter interface {
	Format(w io.Writer, chart *plot.Chart) error
}

// New returns the formatter for name
func New(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "yaml", "yml":
		return NewYAMLFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
	}
}
