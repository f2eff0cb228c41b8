package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ccollicutt/minigrep/internal/ctxlog"
	"github.com/ccollicutt/minigrep/pkg/config"
	"github.com/ccollicutt/minigrep/pkg/flags"
	"github.com/ccollicutt/minigrep/pkg/output"
	"github.com/ccollicutt/minigrep/pkg/search"
	"github.com/ccollicutt/minigrep/pkg/source"
	"github.com/ccollicutt/minigrep/pkg/webhook"
)

const tracerName = "github.com/ccollicutt/minigrep"

// SearchOptions holds the collaborators of the search command.
type SearchOptions struct {
	// Reader loads the searched file. Defaults to source.NewFileReader().
	Reader source.Reader

	// Webhooks delivers reports. Defaults to webhook.NewClient().
	Webhooks *webhook.Client
}

// NewSearchCommand creates the search command. Cobra's own flag parsing is
// disabled; every token goes to flags.ParseWith.
func NewSearchCommand(opts *SearchOptions) *cobra.Command {
	if opts == nil {
		opts = &SearchOptions{}
	}
	if opts.Reader == nil {
		opts.Reader = source.NewFileReader()
	}
	if opts.Webhooks == nil {
		opts.Webhooks = webhook.NewClient()
	}

	return &cobra.Command{
		Use:   flags.Usage,
		Short: "Print the lines of a file that contain a query string",
		Long: `Search a file for lines containing <query> and print them in file order.

Flags:
  -i, --ignore-case      match case-insensitively
      --no-ignore-case   match case-sensitively (default)
  -n, --line-number      prefix each line with its 0-based index and ':'
  -m, --max-count N      stop after N matching lines (0 means no limit)
  --                     treat every following token as a positional

Short flags may be clustered: -in, -m5, -nm5.

Defaults can be set in $XDG_CONFIG_HOME/minigrep/config.yaml or the file
named by MINIGREP_CONFIG; flags always win.

Exit codes:
  0 - Search completed (with or without matches)
  1 - Configuration, read, or write error
  2 - Invalid command line`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}
}

func runSearch(cmd *cobra.Command, args []string, opts *SearchOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The command line is checked before anything is opened, config included.
	if _, _, err := parseInvocation(flags.Options{}, args); err != nil {
		return err
	}

	cfg, cfgPath, err := config.Discover(ctx)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	parsed, inv, err := parseInvocation(cfg.Defaults, args)
	if err != nil {
		return err
	}

	logger.Debug("parsed arguments",
		slog.String("query", inv.Query),
		slog.String("filename", inv.Filename),
		slog.Bool("ignore_case", parsed.Options.IgnoreCase),
		slog.Bool("line_number", parsed.Options.ShowLineNumber),
		slog.Uint64("max_count", uint64(parsed.Options.MaxCount)),
		slog.String("config", cfgPath))

	start := time.Now()
	lines, err := readLines(ctx, opts.Reader, inv.Filename)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	matches := searchLines(ctx, inv.Query, parsed.Options, lines)

	report := output.NewReport(inv, parsed.Options, len(lines), matches, start)
	report.Metadata.ConfigFile = cfgPath
	logger.Debug("search finished",
		slog.String("run_id", report.Metadata.RunID),
		slog.Int("lines", report.Summary.LinesScanned),
		slog.Int("matches", report.Summary.MatchCount),
		slog.Duration("duration", report.Metadata.Duration))

	formatter, err := createFormatter(cfg.Output)
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, "writing output")
	}

	// Webhook failures are logged, never fatal.
	opts.Webhooks.Notify(ctx, cfg.Webhooks, report)

	return nil
}

// parseInvocation folds args over base and extracts the query and filename.
// Errors carry the usage line as a hint.
func parseInvocation(base flags.Options, args []string) (flags.ParsedArguments, flags.Invocation, error) {
	parsed, err := flags.ParseWith(base, args)
	if err != nil {
		return flags.ParsedArguments{}, flags.Invocation{}, errors.WithHint(err, "usage: "+flags.Usage)
	}
	inv, err := parsed.Invocation()
	if err != nil {
		return flags.ParsedArguments{}, flags.Invocation{}, errors.WithHint(err, "usage: "+flags.Usage)
	}
	return parsed, inv, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	level, err := ctxlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "configuring logger")
	}
	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.LogFormat, level)
	if err != nil {
		return nil, errors.Wrap(err, "configuring logger")
	}
	return logger, nil
}

func readLines(ctx context.Context, reader source.Reader, path string) ([]search.LineRecord, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "minigrep.read",
		trace.WithAttributes(attribute.String("minigrep.path", path)),
	)
	defer span.End()

	content, err := reader.ReadFile(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read input")
		return nil, err
	}

	lines := search.SplitLines(content)
	span.SetAttributes(
		attribute.Int("minigrep.bytes", len(content)),
		attribute.Int("minigrep.lines", len(lines)),
	)
	span.SetStatus(codes.Ok, "input read")
	ctxlog.FromContext(ctx).Debug("input read",
		slog.String("path", path),
		slog.Int("bytes", len(content)),
		slog.Int("lines", len(lines)))

	return lines, nil
}

func searchLines(ctx context.Context, query string, opts flags.Options, lines []search.LineRecord) []search.LineRecord {
	_, span := otel.Tracer(tracerName).Start(ctx, "minigrep.search",
		trace.WithAttributes(
			attribute.Bool("minigrep.ignore_case", opts.IgnoreCase),
			attribute.Int64("minigrep.max_count", int64(opts.MaxCount)),
		),
	)
	defer span.End()

	matches := search.Search(query, opts, lines)
	span.SetAttributes(attribute.Int("minigrep.matches", len(matches)))
	span.SetStatus(codes.Ok, "search completed")

	return matches
}

func createFormatter(name string) (output.Formatter, error) {
	switch name {
	case config.OutputText, "":
		return output.NewTextFormatter(), nil
	case config.OutputJSON:
		return output.NewJSONFormatter(), nil
	default:
		return nil, errors.Newf("unknown output format %q (use text or json)", name)
	}
}
