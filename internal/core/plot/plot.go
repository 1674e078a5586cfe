// Package plot lays out a timeline as a fixed-width text diagram. It finds the
// time-to-rows scalar at which the tightest event box fits its wrapped title
// exactly, formats one box per event and composes the boxes of every group
// next to a shared time axis.
package plot

import (
	"errors"

	"github.com/darkfeline/chronoplot/internal/util"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrNoConvergence    = errors.New("could not converge")
	ErrLayoutInfeasible = errors.New("layout infeasible")
)

const (
	// Margin is the number of columns a box spends on "| " and " |".
	Margin = 4
	// BorderRows is the number of rows a box spends on its top and bottom rules.
	BorderRows = 2
	// LabelEvery is the axis label cadence in rows.
	LabelEvery = 5

	DefaultWidth         = 20
	DefaultMaxIterations = 2048
	DefaultMaxRows       = 100000
)

// Options controls a render. The zero value renders 20-column boxes without
// logging.
type Options struct {
	// Width is the outer width of every box, borders included.
	Width int
	// MaxIterations caps the scalar search.
	MaxIterations int
	// MaxRows rejects diagrams taller than this many rows.
	MaxRows int
	Logger  util.LoggerInterface
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxRows <= 0 {
		o.MaxRows = DefaultMaxRows
	}
	if o.Logger == nil {
		o.Logger = util.NewNopLogger()
	}
	return o
}
