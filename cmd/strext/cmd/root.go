package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/strext/core/config"
	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/core/log"
)

var (
	logLevel  string
	logFormat string
	verbose   bool

	logger = log.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "strext",
	Short: "strext - string extension toolkit",
	Long: `strext applies string extension operations to text: padding,
truncation, case transforms, diacritic removal, cleanup and trimming.

Operations can be applied one at a time, chained on the command line or
described in a TOML/YAML pipeline file.

Commands:
  apply    - apply operations to --text or to stdin lines
  run      - run a pipeline file, optionally re-running on change
  ops      - list the available operations
  play     - interactive playground
  version  - show version information`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return strexterror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (json, text, console, logfmt)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (same as --log-level debug)")
}

// setupLogging builds the process logger from flags, falling back to
// STREXT_LOG_LEVEL and STREXT_LOG_FORMAT for flags that were not given
func setupLogging(cmd *cobra.Command, args []string) error {
	levelValue := flagOrEnv(cmd, "log-level", "LOG_LEVEL", logLevel)
	formatValue := flagOrEnv(cmd, "log-format", "LOG_FORMAT", logFormat)

	level, err := log.ParseLevel(levelValue)
	if err != nil {
		return invalidFlag("log-level", levelValue, err)
	}
	if verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(formatValue)
	if err != nil {
		return invalidFlag("log-format", formatValue, err)
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "strext",
	}).WithCorrelationID(uuid.NewString())
	log.SetDefault(logger)

	logger.Debug("command started", log.Fields{"command": cmd.CommandPath(), "args": len(args)})
	return nil
}

func flagOrEnv(cmd *cobra.Command, name, envKey, value string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	if env := os.Getenv(config.DefaultEnvPrefix + "_" + envKey); env != "" {
		return env
	}
	return value
}

func invalidFlag(name, value string, cause error) error {
	return strexterror.Wrap(cause, "invalid --"+name).
		WithCode(strexterror.CodeInvalidInput).
		WithOperation("cmd.setupLogging").
		WithDetail("flag", name).
		WithDetail("value", value)
}

// flagsChanged reports whether the user set the logging flags explicitly
func flagsChanged(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("log-level") || cmd.Flags().Changed("log-format") || verbose
}

// commandContext returns the command context, or Background when the
// command was executed without one
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
}
