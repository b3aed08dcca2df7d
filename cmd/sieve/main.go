package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/thobiasn/sieve/internal/dialog"
	"github.com/thobiasn/sieve/internal/filter"
	"github.com/thobiasn/sieve/internal/journal"
	"github.com/thobiasn/sieve/internal/locale"
	"github.com/thobiasn/sieve/internal/protocol"
	"github.com/thobiasn/sieve/internal/tui"
)

// version is set via -ldflags at build time.
var version = "dev"

// Exit codes.
const (
	exitConfirmed = 0
	exitFailure   = 1
	exitCancelled = 2
)

func main() {
	if len(os.Args) >= 2 && os.Args[1] == "--version" {
		fmt.Println("sieve " + version)
		return
	}

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitFailure)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, opts)
	stop()
	os.Exit(code)
}

// cliOptions is the parsed command line.
type cliOptions struct {
	configPath string
	lang       string
	socketPath string
	format     string // "args" or "toml"
	run        bool
	debug      bool
	seed       filter.Options
}

// parseArgs parses flags and builds the seed filter from them.
func parseArgs(args []string) (*cliOptions, error) {
	fs := flag.NewFlagSet("sieve", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage:\n  sieve [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to config file")
	lang := fs.String("lang", "", "dialog language (default: config, then environment)")
	socketPath := fs.String("socket", "", "exchange seed and result with the parent over this unix socket")
	format := fs.String("format", "args", "output on confirm: args or toml")
	runJournal := fs.Bool("run", false, "run journalctl with the chosen filter")
	debug := fs.Bool("debug", false, "debug logging")

	timeKind := fs.String("time", "", "preselected time window: current_boot, previous_boot or dates")
	since := fs.String("since", "", "seed start date, \"YYYY-MM-DD HH:MM:SS\" or RFC 3339")
	until := fs.String("until", "", "seed end date, \"YYYY-MM-DD HH:MM:SS\" or RFC 3339")
	source := fs.String("source", "", "preselected source: all, unit or file")
	unit := fs.String("unit", "", "seed systemd unit")
	file := fs.String("file", "", "seed executable or device path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *format != "args" && *format != "toml" {
		return nil, fmt.Errorf("unknown format %q", *format)
	}
	if *socketPath != "" && *runJournal {
		return nil, errors.New("--run cannot be combined with --socket")
	}

	seed, err := seedFromFlags(*timeKind, *since, *until, *source, *unit, *file)
	if err != nil {
		return nil, err
	}
	return &cliOptions{
		configPath: *configPath,
		lang:       *lang,
		socketPath: *socketPath,
		format:     *format,
		run:        *runJournal,
		debug:      *debug,
		seed:       seed,
	}, nil
}

// seedFromFlags builds the seed. --source may be left out when exactly one
// of --unit or --file is given.
func seedFromFlags(timeKind, since, until, source, unit, file string) (filter.Options, error) {
	fields := make(map[string]any)

	if timeKind != "" {
		k, err := filter.ParseTimeKind(timeKind)
		if err != nil {
			return filter.Options{}, err
		}
		fields[filter.KeyTime] = string(k)
	}
	for key, val := range map[string]string{filter.KeySince: since, filter.KeyUntil: until} {
		if val == "" {
			continue
		}
		t, err := parseStamp(val)
		if err != nil {
			return filter.Options{}, fmt.Errorf("--%s: %w", key, err)
		}
		fields[key] = t
	}

	if source == "" {
		switch {
		case unit != "" && file != "":
			return filter.Options{}, errors.New("--unit and --file need --source to pick one")
		case unit != "":
			source = string(filter.SourceUnit)
		case file != "":
			source = string(filter.SourceFile)
		}
	}
	if source != "" {
		k, err := filter.ParseSourceKind(source)
		if err != nil {
			return filter.Options{}, err
		}
		fields[filter.KeySource] = string(k)
	}
	fields[filter.KeyUnit] = unit
	fields[filter.KeyFile] = file

	return filter.FromFields(fields), nil
}

func parseStamp(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(filter.JournalTimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

func run(ctx context.Context, opts *cliOptions) int {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfgPath, err := tui.EnsureDefaultConfig(opts.configPath)
	if err != nil {
		slog.Error("failed to prepare config", "error", err)
		return exitFailure
	}
	cfg, err := tui.LoadConfig(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		return exitFailure
	}

	tr := translator(opts.lang, cfg.Locale.Lang)
	tk := tui.NewToolkit(cfg.Display, tui.BuildTheme(cfg.Theme), tui.WithTranslator(tr))

	if opts.socketPath != "" {
		return serveSocket(ctx, opts.socketPath, tk, tr, logger)
	}

	result, err := dialog.New(tk, tr, opts.seed, dialog.WithLogger(logger)).Run(ctx)
	if err != nil {
		slog.Error("filter dialog failed", "error", err)
	}
	if code := exitFor(result, err); code != exitConfirmed {
		return code
	}

	if opts.run {
		if err := (journal.Runner{}).Run(ctx, result.Options, os.Stdout, os.Stderr); err != nil {
			slog.Error("failed to run journalctl", "error", err)
			return exitFailure
		}
		return exitConfirmed
	}
	if err := writeResult(os.Stdout, *result, opts.format); err != nil {
		slog.Error("failed to write result", "error", err)
		return exitFailure
	}
	return exitConfirmed
}

// translator prefers the --lang flag, then the config file, then the environment.
func translator(flagLang, cfgLang string) *locale.Translator {
	switch {
	case flagLang != "":
		return locale.New(flagLang)
	case cfgLang != "":
		return locale.New(cfgLang)
	}
	return locale.FromEnv()
}

// serveSocket answers one seed from the parent process.
func serveSocket(ctx context.Context, path string, tk dialog.Toolkit, tr dialog.Translator, logger *slog.Logger) int {
	conn, err := net.Dial("unix", path)
	if err != nil {
		slog.Error("failed to connect to parent", "socket", path, "error", err)
		return exitFailure
	}
	defer conn.Close()

	seed, err := protocol.ReadSeed(conn)
	if err != nil {
		slog.Error("failed to read seed", "error", err)
		return exitFailure
	}

	result, runErr := dialog.New(tk, tr, seed, dialog.WithLogger(logger)).Run(ctx)
	if err := protocol.WriteReply(conn, result, runErr, errors.Is(runErr, dialog.ErrUnavailable)); err != nil {
		slog.Error("failed to send reply", "error", err)
		return exitFailure
	}
	return exitFor(result, runErr)
}

// exitFor maps the outcome of a dialog run to the process exit code.
func exitFor(result *filter.Result, err error) int {
	switch {
	case err != nil || result == nil:
		return exitFailure
	case !result.Confirmed:
		return exitCancelled
	}
	return exitConfirmed
}

// writeResult prints a confirmed filter as journalctl arguments, one per
// line, or as its TOML key/value form. TOML has no null, so a group with
// nothing selected is written as an empty string.
func writeResult(w io.Writer, result filter.Result, format string) error {
	switch format {
	case "toml":
		fields := result.Fields()
		for k, v := range fields {
			if v == nil {
				fields[k] = ""
			}
		}
		return toml.NewEncoder(w).Encode(fields)
	default:
		args := result.Options.JournalctlArgs()
		if len(args) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, strings.Join(args, "\n"))
		return err
	}
}
