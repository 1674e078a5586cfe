package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/darkfeline/chronoplot/internal/core/plot"
	"github.com/darkfeline/chronoplot/internal/presentation/formatter"
)

// StdinPath names standard input as the timeline source
const StdinPath = "-"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWatchStdin    = errors.New("cannot watch standard input")
)

// RenderConfig contains configuration for one chronoplot invocation
type RenderConfig struct {
	// Input is a timeline file path, or StdinPath
	Input string

	// Layout settings
	Width         int
	MaxIterations int
	MaxRows       int

	// Output settings
	OutputFormat string

	// Input handling
	SkipInvalid bool

	// Watch mode
	Watch    bool
	Debounce time.Duration
}

// Validate fills defaults and rejects unusable values
func (c *RenderConfig) Validate() error {
	if c.Input == "" {
		c.Input = StdinPath
	}
	if c.Width == 0 {
		c.Width = plot.DefaultWidth
	}
	if c.Width <= plot.Margin {
		return fmt.Errorf("%w: width %d must be greater than %d", ErrInvalidConfig, c.Width, plot.Margin)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d is negative", ErrInvalidConfig, c.MaxIterations)
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = plot.DefaultMaxIterations
	}
	if c.MaxRows < 0 {
		return fmt.Errorf("%w: max rows %d is negative", ErrInvalidConfig, c.MaxRows)
	}
	if c.MaxRows == 0 {
		c.MaxRows = plot.DefaultMaxRows
	}
	if c.OutputFormat == "" {
		c.OutputFormat = "text"
	}
	if _, err := formatter.New(c.OutputFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce %v is negative", ErrInvalidConfig, c.Debounce)
	}
	if c.Debounce == 0 {
		c.Debounce = 200 * time.Millisecond
	}
	if c.Watch && c.Input == StdinPath {
		return ErrWatchStdin
	}
	return nil
}

// PlotOptions converts the layout settings into engine options
func (c *RenderConfig) PlotOptions() plot.Options {
	return plot.Options{
		Width:         c.Width,
		MaxIterations: c.MaxIterations,
		MaxRows:       c.MaxRows,
	}
}
