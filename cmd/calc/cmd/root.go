package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pengelbrecht/calc/internal/calculator"
	"github.com/pengelbrecht/calc/internal/config"
	"github.com/pengelbrecht/calc/internal/log"
	"github.com/pengelbrecht/calc/internal/render"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Exit codes returned by Execute.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

var rootCmd = &cobra.Command{
	Use:   "calc",
	Short: "Arithmetic calculator with an operation history",
	Long: `calc performs add, subtract, multiply and divide on two numbers and
keeps a history of every successful operation for the session.

Run without a subcommand to start the interactive menu.

Examples:
  calc
  calc add 2 3
  calc div 8 2 --json
  calc sub -- -3 4`,
	Args:              usageArgs(cobra.NoArgs),
	PersistentPreRunE: loadSettings,
	RunE:              runRepl,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	cfgFile       string
	logLevelFlag  string
	noColorFlag   bool
	timestampFlag bool

	// settings is filled by loadSettings before any command runs.
	settings struct {
		cfg    config.Config
		render *render.Renderer
		clock  calculator.Clock
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.calc/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: error, warn, info, debug")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable styled output")
	rootCmd.PersistentFlags().BoolVar(&timestampFlag, "timestamps", false, "stamp history entries with the current time")
}

// usageError marks errors caused by bad arguments.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// usageArgs tags cobra argument validation failures as usage errors.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}

// Execute runs the CLI with the given arguments and streams, returning an exit code.
func Execute(args []string, in io.Reader, out, errOut io.Writer) int {
	resetFlags(rootCmd)
	settings.render = nil
	log.SetOutput(errOut)

	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if settings.render != nil {
		fmt.Fprintln(errOut, settings.render.Error(err))
	} else {
		fmt.Fprintln(errOut, "error:", err)
	}

	var uerr usageError
	if errors.As(err, &uerr) {
		return ExitUsage
	}
	return ExitError
}

// resetFlags restores every flag to its default so Execute can run repeatedly
// in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func loadSettings(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	level := cfg.LogLevel
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return usageError{err}
	}
	if err := log.SetLevel(parsed); err != nil {
		return err
	}

	settings.cfg = cfg
	settings.render = render.New(render.Options{
		Precision:       cfg.Display.GetPrecision(),
		TimestampFormat: cfg.History.GetTimestampFormat(),
		Color:           cfg.Display.ColorEnabled() && !noColorFlag,
	})
	settings.clock = nil
	if cfg.History.TimestampsEnabled() || timestampFlag {
		settings.clock = time.Now
	}

	log.Debug("settings loaded", "config", path, "level", level, "timestamps", settings.clock != nil)
	return nil
}

// newEvaluator builds an evaluator honouring the timestamp setting.
func newEvaluator() *calculator.Evaluator {
	if settings.clock != nil {
		return calculator.New(calculator.WithClock(settings.clock))
	}
	return calculator.New()
}
