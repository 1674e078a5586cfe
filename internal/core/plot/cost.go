package plot

import (
	"math"

	"github.com/darkfeline/chronoplot/internal/core/model"
)

// maxScaledRows bounds round(v*scalar) so row arithmetic stays exact in both
// float64 and int. The solver may probe scalars far beyond any real diagram.
const maxScaledRows = 1 << 53

// scaled maps a time value or duration to a whole number of rows
func scaled(v, scalar float64) int {
	r := math.Round(v * scalar)
	switch {
	case r > maxScaledRows:
		return maxScaledRows
	case r < -maxScaledRows:
		return -maxScaledRows
	}
	return int(r)
}

// inRange reports whether v lands on a row scaled can represent exactly
func inRange(v, scalar float64) bool {
	return math.Abs(math.Round(v*scalar)) < maxScaledRows
}

// Cost is the slack, in rows, of the box for e at the given scalar: positive
// means spare rows, negative means the wrapped title does not fit, zero is an
// exact fit.
func Cost(width int, scalar float64, e model.Event) int {
	return slack(scaled(e.Duration(), scalar), len(Wrap(e.Text, width-Margin)))
}

func slack(rows, lines int) int {
	return rows - lines - BorderRows
}

// lineCounts wraps every title once; wrapping does not depend on the scalar
func lineCounts(width int, events []model.Event) []int {
	lines := make([]int, len(events))
	for i, e := range events {
		lines[i] = len(Wrap(e.Text, width-Margin))
	}
	return lines
}

// minCost is the smallest Cost over events, given their wrapped line counts
func minCost(scalar float64, events []model.Event, lines []int) int {
	min := math.MaxInt
	for i, e := range events {
		if c := slack(scaled(e.Duration(), scalar), lines[i]); c < min {
			min = c
		}
	}
	return min
}
