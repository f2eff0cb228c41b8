// Package cli provides the command-line interface for minigrep.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/minigrep/internal/cli/commands"
	"github.com/ccollicutt/minigrep/pkg/flags"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Execute runs minigrep with os.Args and returns the exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
}

// Run executes one invocation with the given arguments (program name already
// stripped) and returns the exit code. Errors are printed to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts *commands.SearchOptions) int {
	rootCmd := NewRootCommand(opts)
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			_, _ = fmt.Fprintln(stderr, hint)
		}
		return ExitCode(err)
	}
	return ExitOK
}

// ExitCode maps a run error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var parseErr *flags.ParseError
	if errors.As(err, &parseErr) {
		return ExitUsage
	}
	return ExitError
}

// NewRootCommand creates the root cobra command. minigrep has no
// subcommands, so a query such as "help" or "version" is searched for.
func NewRootCommand(opts *commands.SearchOptions) *cobra.Command {
	return commands.NewSearchCommand(opts)
}
