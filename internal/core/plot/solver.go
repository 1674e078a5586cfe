package plot

import (
	"fmt"
	"math"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/util"
)

// Solve finds the scalar at which the smallest box cost is exactly zero: the
// tightest event fits its box with no spare row and no event overflows.
//
// Cost never decreases as the scalar grows and moves in steps of one, so the
// scalars with a zero minimum form a non-empty interval. The search doubles or
// halves from 1 until that interval is bracketed, then bisects.
func Solve(events []model.Event, opts Options) (float64, error) {
	opts = opts.withDefaults()
	if len(events) == 0 {
		return 0, ErrEmptyInput
	}
	textWidth := opts.Width - Margin
	if textWidth < 1 {
		return 0, fmt.Errorf("%w: box width %d leaves no room for text", ErrLayoutInfeasible, opts.Width)
	}

	lines := lineCounts(opts.Width, events)

	log := opts.Logger
	scalar := 1.0
	lower, upper := math.Inf(-1), math.Inf(1)

	for i := 0; i < opts.MaxIterations; i++ {
		cost := minCost(scalar, events, lines)

		var next float64
		switch {
		case cost > 0:
			log.Debug("Scalar too big", util.F("iteration", i), util.F("scalar", scalar), util.F("cost", cost))
			upper = scalar
			if math.IsInf(lower, -1) {
				next = scalar / 2
			} else {
				next = (lower + scalar) / 2
			}
		case cost < 0:
			log.Debug("Scalar too small", util.F("iteration", i), util.F("scalar", scalar), util.F("cost", cost))
			lower = scalar
			if math.IsInf(upper, 1) {
				next = scalar * 2
			} else {
				next = (upper + scalar) / 2
			}
		default:
			log.Debug("Scalar fits", util.F("iteration", i), util.F("scalar", scalar))
			return scalar, nil
		}

		// The bracket has collapsed to adjacent floats or run off the ends of
		// the representable range.
		if next == scalar || next <= 0 || math.IsInf(next, 0) || math.IsNaN(next) {
			return 0, fmt.Errorf("%w: search stalled at scalar %v (lower %v, upper %v)",
				ErrNoConvergence, scalar, lower, upper)
		}
		scalar = next
	}

	return 0, fmt.Errorf("%w: no exact fit after %d iterations (lower %v, upper %v)",
		ErrNoConvergence, opts.MaxIterations, lower, upper)
}
