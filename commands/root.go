package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darkfeline/chronoplot/internal/application/render"
	"github.com/darkfeline/chronoplot/internal/core/plot"
	"github.com/darkfeline/chronoplot/internal/presentation/formatter"
	"github.com/darkfeline/chronoplot/internal/util"
)

// Version is set at build time with -ldflags "-X .../commands.Version=..."
var Version = "dev"

const (
	defaultConfigFile = "~/.chronoplot.yaml"
	envPrefix         = "CHRONOPLOT"
)

// Config keys, shared by flags, the config file and the environment
const (
	keyWidth         = "width"
	keyOutput        = "output"
	keySkipInvalid   = "skip-invalid"
	keyWatch         = "watch"
	keyDebounce      = "debounce"
	keyMaxIterations = "max-iterations"
	keyMaxRows       = "max-rows"
	keyDebug         = "debug"
	keyLogFile       = "log-file"
	keyLogFormat     = "log-format"
)

// NewRootCommand builds the chronoplot command. Output goes to the command's
// out and err writers, input to its in reader, so tests can run it in process.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "chronoplot [file] [flags]",
		Short: "Draw timelines as text diagrams",
		Long: `chronoplot lays out timed events as boxes in a text diagram.

Each input line is "start stop group title", fields separated by whitespace and
quoted shell style when they contain spaces. Lines starting with # are
comments. Events of one group share a column; the time axis is scaled so the
tightest title just fits its box.

Examples:
  chronoplot events.txt                       # Render a file
  cat events.txt | chronoplot                 # Render standard input
  chronoplot events.txt --width 30            # Wider columns
  chronoplot events.txt --output summary      # Table of placed boxes
  chronoplot events.txt --output json         # Full layout as JSON
  chronoplot events.txt --watch               # Re-render on every save`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := cmd.Flags()

	// Layout
	flags.IntP(keyWidth, "w", plot.DefaultWidth,
		"Column width of each group, borders included")
	flags.Int(keyMaxIterations, plot.DefaultMaxIterations,
		"Give up solving the time scale after this many steps")
	flags.Int(keyMaxRows, plot.DefaultMaxRows,
		"Refuse diagrams taller than this many rows")

	// Input and output
	flags.StringP(keyOutput, "o", "text",
		"Output format ("+strings.Join(formatter.Formats, ", ")+")")
	flags.Bool(keySkipInvalid, false,
		"Skip malformed input lines instead of failing")
	flags.Bool(keyWatch, false,
		"Re-render whenever the input file changes")
	flags.Duration(keyDebounce, 200*time.Millisecond,
		"Wait this long after a change before re-rendering")

	// System and debugging
	cmd.PersistentFlags().StringVar(&configFile, "config", defaultConfigFile,
		"Config file")
	cmd.PersistentFlags().Bool(keyDebug, false,
		"Enable debug logging")
	cmd.PersistentFlags().String(keyLogFile, "",
		"Also write logs to this file")
	cmd.PersistentFlags().String(keyLogFormat, string(util.FormatText),
		"Log format (text, json)")

	return cmd
}

// loadConfig layers flags over CHRONOPLOT_* environment variables over the
// config file over flag defaults
func loadConfig(v *viper.Viper, cmd *cobra.Command, configFile string) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	path := expandPath(configFile)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config") {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	logger, err := newLogger(v, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	if used := v.ConfigFileUsed(); used != "" {
		if _, statErr := os.Stat(used); statErr == nil {
			logger.Debug("Loaded config", util.F("path", used))
		}
	}

	input := render.StdinPath
	if len(args) == 1 && args[0] != render.StdinPath {
		input = expandPath(args[0])
	}

	config := &render.RenderConfig{
		Input:         input,
		Width:         v.GetInt(keyWidth),
		MaxIterations: v.GetInt(keyMaxIterations),
		MaxRows:       v.GetInt(keyMaxRows),
		OutputFormat:  v.GetString(keyOutput),
		SkipInvalid:   v.GetBool(keySkipInvalid),
		Watch:         v.GetBool(keyWatch),
		Debounce:      v.GetDuration(keyDebounce),
	}

	o, err := render.NewOrchestrator(config, logger, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return o.Run(ctx)
}

// newLogger logs warnings to the console, everything with --debug, and the
// same entries to --log-file when given
func newLogger(v *viper.Viper, console io.Writer) (*util.Logger, error) {
	level := "warn"
	if v.GetBool(keyDebug) {
		level = "debug"
	}

	format := util.LogFormat(strings.ToLower(v.GetString(keyLogFormat)))
	if format != util.FormatText && format != util.FormatJSON {
		return nil, fmt.Errorf("%w: unknown log format %q", render.ErrInvalidConfig, format)
	}

	logFile := v.GetString(keyLogFile)
	if logFile != "" {
		logFile = expandPath(logFile)
		if err := ensureDir(filepath.Dir(logFile)); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	return util.NewLogger(level, logFile, console, format)
}

// Execute runs the root command with the process arguments
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// Helper functions

func expandPath(path string) string {
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
