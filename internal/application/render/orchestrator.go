package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/core/plot"
	"github.com/darkfeline/chronoplot/internal/data/parser"
	"github.com/darkfeline/chronoplot/internal/presentation/formatter"
	"github.com/darkfeline/chronoplot/internal/presentation/layout"
	"github.com/darkfeline/chronoplot/internal/util"
)

// Orchestrator wires parsing, layout and output for the CLI
type Orchestrator struct {
	config    *RenderConfig
	parser    *parser.Parser
	formatter formatter.Formatter
	logger    util.LoggerInterface

	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	sizer  *layout.Sizer

	mu sync.Mutex

	// last rendered input, used by the watch loop only
	fingerprint string
}

// NewOrchestrator validates config and prepares the pipeline. Output goes to
// out; watch-mode errors go to errOut.
func NewOrchestrator(config *RenderConfig, logger util.LoggerInterface, stdin io.Reader, out, errOut io.Writer) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = util.NewNopLogger()
	}

	f, err := formatter.New(config.OutputFormat)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{
		config:    config,
		parser:    parser.NewParser(config.SkipInvalid, logger),
		formatter: f,
		logger:    logger,
		stdin:     stdin,
		out:       out,
		errOut:    errOut,
	}
	if file, ok := out.(*os.File); ok {
		o.sizer = layout.NewSizer(file)
	}
	return o, nil
}

// LoadTimeline parses the configured input
func (o *Orchestrator) LoadTimeline() (*model.Timeline, error) {
	var (
		result *parser.ParseResult
		err    error
	)
	if o.config.Input == StdinPath {
		result, err = o.parser.Parse(o.stdin)
	} else {
		result, err = o.parser.ParseFile(o.config.Input)
	}
	if err != nil {
		return nil, err
	}

	if n := len(result.Skipped); n > 0 {
		o.logger.Warnf("Skipped %d invalid line(s) of %d", n, result.Lines)
	}
	return result.Timeline, nil
}

// RenderChart parses the input and lays it out
func (o *Orchestrator) RenderChart() (*plot.Chart, error) {
	tl, err := o.LoadTimeline()
	if err != nil {
		return nil, err
	}

	opts := o.config.PlotOptions()
	opts.Logger = o.logger
	start := time.Now()
	chart, err := plot.Render(tl, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render timeline: %w", err)
	}
	o.logger.Debug("Rendered chart", util.F("rows", len(chart.Lines)), util.F("elapsed", time.Since(start).String()))

	if o.sizer != nil {
		if over := o.sizer.Overflow(chart.Lines); over > 0 {
			o.logger.Warnf("Diagram is %d column(s) wider than the terminal", over)
		}
	}
	return chart, nil
}

// RenderOnce renders the input and writes it in the configured format
func (o *Orchestrator) RenderOnce() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	chart, err := o.RenderChart()
	if err != nil {
		return err
	}
	return o.formatter.Format(o.out, chart)
}

// Run renders once, or keeps re-rendering on change in watch mode until ctx
// is cancelled.
func (o *Orchestrator) Run(ctx context.Context) error {
	if !o.config.Watch {
		return o.RenderOnce()
	}
	return o.watch(ctx)
}

func (o *Orchestrator) watch(ctx context.Context) error {
	fw, err := NewFileWatcher(o.config.Input, o.logger)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Close()

	o.logger.Info("Watching for changes", util.F("path", o.config.Input))
	o.refresh()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-fw.Events():
			if !ok {
				return nil
			}
			if timer == nil {
				timer = time.NewTimer(o.config.Debounce)
			} else {
				timer.Reset(o.config.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			o.refresh()
		}
	}
}

// refresh redraws in watch mode when the input content changed. Errors are
// reported and watching continues.
func (o *Orchestrator) refresh() {
	if fp, err := util.CalculateFileFingerprint(o.config.Input); err == nil {
		if fp == o.fingerprint {
			o.logger.Debug("Input unchanged, skip render", util.F("fingerprint", fp))
			return
		}
		o.fingerprint = fp
	}

	if o.sizer != nil && o.sizer.IsTerminal() {
		fmt.Fprint(o.out, util.ClearScreen+util.MoveCursorHome)
	}
	if err := o.RenderOnce(); err != nil {
		o.logger.Error("Render failed", util.F("error", err.Error()))
		fmt.Fprintf(o.errOut, "error: %v\n", err)
	}
}
