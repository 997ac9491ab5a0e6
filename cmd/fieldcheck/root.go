package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type runIDKey struct{}

type app struct {
	cfg    config.Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(a *app) *cobra.Command {
	var logLevel, logFormat string

	cmd := &cobra.Command{
		Use:   "fieldcheck",
		Short: "Validate flat JSON documents against rule schemas",
		Long: `fieldcheck runs rule declarations such as "required|min:3" against the
fields of a JSON object and prints one message per failed rule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&a.cfg); err != nil {
				return err
			}
			if logLevel != "" {
				a.cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				a.cfg.LogFormat = logFormat
			}

			level, err := logger.ParseLevel(a.cfg.LogLevel)
			if err != nil {
				return err
			}
			format, err := logger.ParseFormat(a.cfg.LogFormat)
			if err != nil {
				return err
			}

			a.log = logger.New(
				logger.WithOutput(a.stderr),
				logger.WithLevel(level),
				logger.WithFormat(format),
				logger.WithContextValue("run_id", runIDKey{}),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString()))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides FIELDCHECK_LOG_LEVEL)")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json (overrides FIELDCHECK_LOG_FORMAT)")

	cmd.AddCommand(newValidateCmd(a))
	return cmd
}

// execute runs the command line and maps the outcome to an exit code.
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		log:    logger.Discard(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrInvalidDocument):
		return exitInvalid
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitUsage
	}
}
