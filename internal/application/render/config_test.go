package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkfeline/chronoplot/internal/core/plot"
)

func TestRenderConfigValidateDefaults(t *testing.T) {
	config := &RenderConfig{}
	require.NoError(t, config.Validate())

	assert.Equal(t, StdinPath, config.Input)
	assert.Equal(t, plot.DefaultWidth, config.Width)
	assert.Equal(t, plot.DefaultMaxIterations, config.MaxIterations)
	assert.Equal(t, plot.DefaultMaxRows, config.MaxRows)
	assert.Equal(t, "text", config.OutputFormat)
	assert.Equal(t, 200*time.Millisecond, config.Debounce)
}

func TestRenderConfigValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		config RenderConfig
		target error
	}{
		{
			name:   "width too small",
			config: RenderConfig{Width: 4},
			target: ErrInvalidConfig,
		},
		{
			name:   "negative width",
			config: RenderConfig{Width: -10},
			target: ErrInvalidConfig,
		},
		{
			name:   "unknown format",
			config: RenderConfig{OutputFormat: "svg"},
			target: ErrInvalidConfig,
		},
		{
			name:   "negative iterations",
			config: RenderConfig{MaxIterations: -1},
			target: ErrInvalidConfig,
		},
		{
			name:   "negative rows",
			config: RenderConfig{MaxRows: -1},
			target: ErrInvalidConfig,
		},
		{
			name:   "negative debounce",
			config: RenderConfig{Debounce: -time.Second},
			target: ErrInvalidConfig,
		},
		{
			name:   "watch stdin",
			config: RenderConfig{Watch: true},
			target: ErrWatchStdin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestRenderConfigPlotOptions(t *testing.T) {
	config := &RenderConfig{Width: 32, MaxIterations: 10, MaxRows: 50}
	opts := config.PlotOptions()

	assert.Equal(t, 32, opts.Width)
	assert.Equal(t, 10, opts.MaxIterations)
	assert.Equal(t, 50, opts.MaxRows)
}
