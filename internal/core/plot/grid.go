package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/util"
)

// Placement records where one event's box landed in the grid
type Placement struct {
	Event  model.Event `json:"event" yaml:"event"`
	Row    int         `json:"row" yaml:"row"`
	Height int         `json:"height" yaml:"height"`
	Slack  int         `json:"slack" yaml:"slack"`
}

// Chart is the result of a render. Lines is the diagram; the rest describes
// how it was laid out.
type Chart struct {
	Scalar    float64     `json:"scalar" yaml:"scalar"`
	Width     int         `json:"width" yaml:"width"`
	Start     float64     `json:"start" yaml:"start"`
	Stop      float64     `json:"stop" yaml:"stop"`
	FirstTick int         `json:"first_tick" yaml:"first_tick"`
	LastTick  int         `json:"last_tick" yaml:"last_tick"`
	Groups    []string    `json:"groups" yaml:"groups"`
	Boxes     []Placement `json:"boxes" yaml:"boxes"`
	Lines     []string    `json:"lines" yaml:"lines"`
}

// Render solves the scalar for tl and composes the diagram: a labelled time
// axis followed by one column per group, in first-appearance order. Every box
// lies fully inside the axis.
func Render(tl *model.Timeline, opts Options) (*Chart, error) {
	opts = opts.withDefaults()
	log := opts.Logger
	if tl == nil {
		return nil, ErrEmptyInput
	}

	start, stop, err := tl.Range()
	if err != nil {
		if errors.Is(err, model.ErrEmptyTimeline) {
			return nil, ErrEmptyInput
		}
		return nil, err
	}

	events := tl.Events()
	scalar, err := Solve(events, opts)
	if err != nil {
		return nil, err
	}
	log.Info("Solved scalar", util.F("scalar", scalar), util.F("events", len(events)), util.F("width", opts.Width))

	if !inRange(start, scalar) || !inRange(stop, scalar) {
		return nil, fmt.Errorf("%w: times %v..%v are out of range at scalar %v", ErrLayoutInfeasible, start, stop, scalar)
	}

	// Offsets and heights round separately, so a box can end one row past
	// scaled(stop). The axis runs to the lowest box bottom so no border is lost.
	first, last := scaled(start, scalar), scaled(stop, scalar)
	for _, e := range events {
		if end := scaled(e.Start, scalar) + scaled(e.Duration(), scalar); end > last {
			last = end
		}
	}
	if last > scaled(stop, scalar) {
		log.Debug("Extended axis past stop", util.F("stop_tick", scaled(stop, scalar)), util.F("last_tick", last))
	}

	rows := last - first + 1
	if rows > opts.MaxRows {
		return nil, fmt.Errorf("%w: diagram needs %d rows, limit is %d", ErrLayoutInfeasible, rows, opts.MaxRows)
	}

	chart := &Chart{
		Scalar:    scalar,
		Width:     opts.Width,
		Start:     start,
		Stop:      stop,
		FirstTick: first,
		LastTick:  last,
		Groups:    tl.Groups(),
		Boxes:     make([]Placement, 0, len(events)),
	}

	lines := axis(first, rows, scalar)
	for _, group := range chart.Groups {
		column := make([]string, rows)
		for i := range column {
			column[i] = util.Blank(opts.Width)
		}

		for _, e := range tl.GroupEvents(group) {
			box, err := FormatBox(e, opts.Width, scalar)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", group, err)
			}

			offset := scaled(e.Start, scalar) - first
			copy(column[offset:], box.Lines)

			chart.Boxes = append(chart.Boxes, Placement{
				Event:  e,
				Row:    offset,
				Height: box.Height,
				Slack:  Cost(opts.Width, scalar, e),
			})
		}

		for i := range lines {
			lines[i] += " " + column[i]
		}
	}

	chart.Lines = lines
	return chart, nil
}

// axis builds the time-axis cell of every row. Every LabelEvery-th row,
// starting with the first, shows its time right-aligned followed by " -";
// the others show blank padding followed by " |".
func axis(first, rows int, scalar float64) []string {
	labels := make(map[int]string, rows/LabelEvery+1)
	labelWidth := 0
	for i := 0; i < rows; i += LabelEvery {
		label := util.FormatTick(float64(first+i) / scalar)
		labels[i] = label
		if w := util.GetDisplayWidth(label); w > labelWidth {
			labelWidth = w
		}
	}

	cells := make([]string, rows)
	var b strings.Builder
	for i := range cells {
		b.Reset()
		if label, ok := labels[i]; ok {
			b.WriteString(util.PadLeft(label, labelWidth))
			b.WriteString(" -")
		} else {
			b.WriteString(util.Blank(labelWidth))
			b.WriteString(" |")
		}
		cells[i] = b.String()
	}
	return cells
}
