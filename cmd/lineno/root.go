package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thimc/lineno"
	"github.com/thimc/lineno/internal/config"
	"github.com/thimc/lineno/internal/log"
)

type options struct {
	envFile   string
	file      string
	number    bool
	logLevel  string
	logFormat string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "lineno [flags] [SPEC...]",
		Short: "Print selected lines of a file",
		Long: `Print the lines of a file, or standard input, selected by line numbers and ranges.

Each SPEC is a list of filters separated by commas or blanks. A filter is
a line number (7) or a range (3:9, 3..9). Either side of a range may be
omitted (5:, :5). A range written backwards (9:3) prints its lines in
reverse. Lines are printed filter by filter, in the order given. Without
any SPEC every line is printed.`,
		Example: `  lineno 1,4 10:12 -f notes.txt
  seq 100 | lineno 98:
  seq 100 | lineno 5..3`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "input file (default standard input)")
	flags.BoolVarP(&opts.number, "number", "n", false, "prefix each line with its line number")
	flags.StringVar(&opts.envFile, "env-file", "", "path to .env file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: console or json")

	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration and applies the flags that were set
// explicitly on top of it.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("number") {
		cfg.Number = opts.number
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := log.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	specs := make([]lineno.Filters, 0, len(args))
	for _, arg := range args {
		f, err := lineno.Parse(arg)
		if err != nil {
			return fmt.Errorf("parse filter %q: %w", arg, err)
		}
		logger.Debug("parsed filter", zap.String("spec", arg), zap.Stringer("filters", f))
		specs = append(specs, f)
	}

	in, err := openInput(cmd, opts.file, logger)
	if err != nil {
		return err
	}
	defer in.Close()

	stop := closeOnSignal(in, logger)
	defer stop()

	lines, err := lineno.Select(specs, in,
		lineno.WithLogger(logger),
		lineno.WithMaxLineSize(cfg.MaxLineSize),
	)
	if err != nil {
		return err
	}
	logger.Debug("selected lines", zap.Int("count", len(lines)))
	return lineno.Print(cmd.OutOrStdout(), lines, cfg.Number)
}

// openInput opens path for reading. An empty path or "-" means the
// command's standard input.
func openInput(cmd *cobra.Command, path string, logger *zap.Logger) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		logger.Debug("reading file", zap.String("path", path))
		return f, nil
	}
	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			logger.Debug("reading from terminal, end input with EOF")
		}
		return f, nil
	}
	return io.NopCloser(stdin), nil
}
