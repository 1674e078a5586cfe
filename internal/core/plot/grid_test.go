package plot

import (
	"strings"
	"testing"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeline(t *testing.T, events ...model.Event) *model.Timeline {
	t.Helper()
	tl := model.NewTimeline()
	for _, e := range events {
		require.NoError(t, tl.AddEvent(e))
	}
	return tl
}

func TestRenderEmpty(t *testing.T) {
	chart, err := Render(model.NewTimeline(), Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, chart)

	chart, err = Render(nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Nil(t, chart)
}

func TestRenderSingleEvent(t *testing.T) {
	tl := newTimeline(t, model.Event{Start: 0, Stop: 5, Group: "G", Text: "Launch"})

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)

	assert.Equal(t, 0.5, chart.Scalar)
	assert.Equal(t, []string{
		"0 - " + rule20,
		"  | |      Launch      |",
		"  | " + empty20,
		"  | " + rule20,
	}, chart.Lines)

	require.Len(t, chart.Boxes, 1)
	assert.Equal(t, 0, chart.Boxes[0].Row)
	assert.Equal(t, 4, chart.Boxes[0].Height)
	assert.Equal(t, 0, chart.Boxes[0].Slack)
}

func TestRenderOneGroupTwoEvents(t *testing.T) {
	tl := newTimeline(t,
		model.Event{Start: 0, Stop: 1, Group: "A", Text: "x"},
		model.Event{Start: 1, Stop: 3, Group: "A", Text: "y"},
	)

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)
	assert.Equal(t, 3.0, chart.Scalar)
	require.Len(t, chart.Lines, 10)

	xLine := "|" + strings.Repeat(" ", 8) + "x" + strings.Repeat(" ", 9) + "|"
	yLine := "|" + strings.Repeat(" ", 8) + "y" + strings.Repeat(" ", 9) + "|"

	assert.Equal(t, "   0 - "+rule20, chart.Lines[0])
	assert.Equal(t, "     | "+xLine, chart.Lines[1])
	// y's top rule overwrites x's bottom rule on the shared row
	assert.Equal(t, "     | "+rule20, chart.Lines[3])
	assert.Equal(t, "1.67 - "+empty20, chart.Lines[5])
	assert.Equal(t, "     | "+yLine, chart.Lines[6])
	assert.Equal(t, "     | "+rule20, chart.Lines[9])

	require.Len(t, chart.Boxes, 2)
	assert.Equal(t, 0, chart.Boxes[0].Slack)
	assert.GreaterOrEqual(t, chart.Boxes[1].Slack, 0)
	assert.Equal(t, 3, chart.Boxes[1].Row)
}

func TestRenderTwoGroups(t *testing.T) {
	tl := newTimeline(t,
		model.Event{Start: 0, Stop: 2, Group: "A", Text: "alpha"},
		model.Event{Start: 1, Stop: 3, Group: "B", Text: "beta"},
	)

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, chart.Groups)
	require.Len(t, chart.Lines, 6)

	columnA := func(line string) string { return line[4:24] }
	columnB := func(line string) string { return line[25:45] }

	for _, line := range chart.Lines {
		assert.Equal(t, 3+1+20+1+20, util.GetDisplayWidth(line))
	}

	assert.Equal(t, rule20, columnA(chart.Lines[0]))
	assert.Equal(t, util.Blank(20), columnB(chart.Lines[0]))
	assert.Equal(t, rule20, columnB(chart.Lines[2]))
	assert.Contains(t, columnA(chart.Lines[1]), "alpha")
	assert.Contains(t, columnB(chart.Lines[3]), "beta")
	assert.Equal(t, util.Blank(20), columnA(chart.Lines[5]))
	assert.Equal(t, rule20, columnB(chart.Lines[5]))
}

func TestRenderOverlapLastWriteWins(t *testing.T) {
	tl := newTimeline(t,
		model.Event{Start: 0, Stop: 2, Group: "A", Text: "first"},
		model.Event{Start: 0, Stop: 2, Group: "A", Text: "second"},
	)

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)

	joined := strings.Join(chart.Lines, "\n")
	assert.Contains(t, joined, "second")
	assert.NotContains(t, joined, "first")
}

func TestRenderLineCount(t *testing.T) {
	timelines := [][]model.Event{
		{
			{Start: 0, Stop: 5, Group: "G", Text: "Launch"},
		},
		{
			{Start: 0.2, Stop: 1.7, Group: "A", Text: "warm up the caches"},
			{Start: 1.7, Stop: 2.3, Group: "A", Text: "serve"},
			{Start: 0.9, Stop: 4.4, Group: "B", Text: "background compaction of old segments"},
		},
		{
			{Start: -3, Stop: -1, Group: "past", Text: "before"},
			{Start: 10, Stop: 12.5, Group: "future", Text: "after"},
		},
	}

	for _, events := range timelines {
		tl := newTimeline(t, events...)
		chart, err := Render(tl, Options{Width: 16})
		require.NoError(t, err)

		start, stop, err := tl.Range()
		require.NoError(t, err)
		assert.Equal(t, scaled(start, chart.Scalar), chart.FirstTick)
		assert.GreaterOrEqual(t, chart.LastTick, scaled(stop, chart.Scalar))
		assert.LessOrEqual(t, chart.LastTick, scaled(stop, chart.Scalar)+1)
		assert.Equal(t, chart.LastTick-chart.FirstTick+1, len(chart.Lines))

		width := util.GetDisplayWidth(chart.Lines[0])
		for _, line := range chart.Lines {
			assert.Equal(t, width, util.GetDisplayWidth(line))
		}
		for _, p := range chart.Boxes {
			assert.GreaterOrEqual(t, p.Slack, 0)
			assert.GreaterOrEqual(t, p.Row, 0)
			assert.LessOrEqual(t, p.Row+p.Height, len(chart.Lines), "box %s fits the axis", p.Event)
		}
	}
}

func TestRenderEpochTimestamps(t *testing.T) {
	tl := newTimeline(t,
		model.Event{Start: 1700000000, Stop: 1700000001, Group: "A", Text: "x"},
		model.Event{Start: 1700000001, Stop: 1700000003, Group: "A", Text: "y"},
	)

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)
	assert.Equal(t, 3.0, chart.Scalar)
	assert.Equal(t, 5100000000, chart.FirstTick)
	assert.Equal(t, 5100000009, chart.LastTick)
	require.Len(t, chart.Lines, 10)

	assert.Equal(t, "   1700000000 - "+rule20, chart.Lines[0])
	assert.Equal(t, "1700000001.67 - "+empty20, chart.Lines[5])
	assert.Equal(t, "              | "+rule20, chart.Lines[9])
	assert.Equal(t, 3, chart.Boxes[1].Row)
}

func TestRenderTimesOutOfRange(t *testing.T) {
	tl := newTimeline(t,
		model.Event{Start: 0, Stop: 1, Group: "A", Text: "x"},
		model.Event{Start: 1e17, Stop: 1e17 + 1e3, Group: "A", Text: "y"},
	)

	_, err := Render(tl, Options{Width: 20})
	assert.ErrorIs(t, err, ErrLayoutInfeasible)
}

func TestRenderBoxEndingPastStop(t *testing.T) {
	// At scalar 3 y starts on row round(0.6) = 1 and spans round(2.7) = 3
	// rows, so its bottom rule lands on row 4 while scaled(1.1) is 3.
	tl := newTimeline(t,
		model.Event{Start: 0, Stop: 1, Group: "A", Text: "x"},
		model.Event{Start: 0.2, Stop: 1.1, Group: "A", Text: "y"},
	)

	chart, err := Render(tl, Options{Width: 20})
	require.NoError(t, err)
	assert.Equal(t, 3.0, chart.Scalar)
	assert.Equal(t, 3, scaled(1.1, chart.Scalar))
	assert.Equal(t, 4, chart.LastTick)
	require.Len(t, chart.Lines, 5)

	require.Len(t, chart.Boxes, 2)
	assert.Equal(t, 1, chart.Boxes[1].Row)
	assert.Equal(t, 4, chart.Boxes[1].Height)
	assert.Equal(t, "  | "+rule20, chart.Lines[4], "bottom border is kept")
}

func TestRenderAxisCadence(t *testing.T) {
	tl := newTimeline(t, model.Event{Start: 0, Stop: 12, Group: "G", Text: "a b c d e f g h i j"})

	chart, err := Render(tl, Options{Width: 8})
	require.NoError(t, err)
	require.Greater(t, len(chart.Lines), LabelEvery)

	for i, line := range chart.Lines {
		sep := strings.Fields(line)[0]
		if i%LabelEvery == 0 {
			assert.NotEqual(t, "|", sep, "row %d should carry a label", i)
			continue
		}
		assert.Equal(t, "|", sep, "row %d should not carry a label", i)
	}
}

func TestRenderRowLimit(t *testing.T) {
	tl := newTimeline(t, model.Event{Start: 0, Stop: 5, Group: "G", Text: "Launch"})

	_, err := Render(tl, Options{Width: 20, MaxRows: 3})
	assert.ErrorIs(t, err, ErrLayoutInfeasible)
}

func TestRenderInfeasibleWidth(t *testing.T) {
	tl := newTimeline(t, model.Event{Start: 0, Stop: 5, Group: "G", Text: "Launch"})

	_, err := Render(tl, Options{Width: 3})
	assert.ErrorIs(t, err, ErrLayoutInfeasible)
}
