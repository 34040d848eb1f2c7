package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"clearview/internal/platform/config"
	"clearview/internal/platform/logger"
	dErrors "clearview/pkg/domain-errors"
)

const version = "0.1.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitInputError   = 3
	ExitRuntimeError = 4
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	cfg        config.Config
	logger     *slog.Logger
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clearview",
		Short:         "Resolve license clearing decisions and merge highlight spans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default $CLEARVIEW_CONFIG)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	root.AddCommand(
		a.resolveCommand(),
		a.historyCommand(),
		a.bulkCommand(),
		a.flattenCommand(),
		a.appendCommand(),
		a.eventsCommand(),
		a.migrateCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print clearview version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "clearview version %s\n", version)
			},
		},
	)
	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usageError{err}
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	log, err := logger.New(a.stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return usageError{err}
	}
	a.cfg = cfg
	a.logger = log
	return nil
}

// usageError marks failures caused by flags or configuration.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func exitCodeFor(err error) int {
	var usage usageError
	if errors.As(err, &usage) {
		return ExitUsageError
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidInput, dErrors.CodeValidation, dErrors.CodeInvalidSpan,
		dErrors.CodeUnknownLicenseRef, dErrors.CodeUnknownDecisionType, dErrors.CodePreconditionFailed:
		return ExitInputError
	default:
		return ExitRuntimeError
	}
}
