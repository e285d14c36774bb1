package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"clueboard/internal/board"
	"clueboard/internal/choices"
	"clueboard/internal/config"
	"clueboard/internal/dataset"
	"clueboard/internal/game"
	"clueboard/internal/logger"
)

// commonFlags are the config and dataset flags shared by game commands.
type commonFlags struct {
	configPath string
	dataset    string
	name       string
	round      string
	seed       int64
	verbose    bool
	set        map[string]bool
}

func (c *commonFlags) register(flags *flag.FlagSet) {
	flags.StringVar(&c.configPath, "config", "", "Path to config file (default: search for .clueboard/config.yml)")
	flags.StringVar(&c.dataset, "dataset", "", "Dataset file or URL (overrides the config)")
	flags.StringVar(&c.name, "name", "", "Imported dataset name when reading a DuckDB store")
	flags.StringVar(&c.round, "round", "", "Round whose clues fill the board")
	flags.Int64Var(&c.seed, "seed", 0, "Random seed; 0 picks a fresh one")
	flags.BoolVar(&c.verbose, "verbose", false, "Write diagnostic logs to stderr")
}

// markSet records which flags were given explicitly.
func (c *commonFlags) markSet(flags *flag.FlagSet) {
	c.set = map[string]bool{}
	flags.Visit(func(f *flag.Flag) {
		c.set[f.Name] = true
	})
}

// environment is a resolved config plus what the commands build from it.
type environment struct {
	loaded  config.Loaded
	spec    dataset.Spec
	options game.Options
	log     *logger.Logger
}

// resolveEnvironment loads the config, applies flag overrides and builds the
// logger. logSink receives logs for --verbose when no log file is configured.
func resolveEnvironment(c commonFlags, logSink io.Writer) (*environment, error) {
	loaded, err := config.Resolve(c.configPath)
	if err != nil {
		return nil, err
	}
	cfg := &loaded.Config
	if value := strings.TrimSpace(c.dataset); value != "" {
		if !dataset.IsURL(value) {
			abs, err := filepath.Abs(value)
			if err != nil {
				return nil, fmt.Errorf("resolve dataset path: %w", err)
			}
			value = abs
		}
		cfg.Dataset.Path = value
		cfg.Dataset.Format = ""
	}
	if c.name != "" {
		cfg.Dataset.Name = c.name
	}
	if c.round != "" {
		cfg.Board.Round = c.round
	}
	if c.set["seed"] {
		cfg.Game.Seed = c.seed
	}
	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	log, err := buildLogger(loaded, c.verbose, logSink)
	if err != nil {
		return nil, err
	}
	return &environment{
		loaded: loaded,
		spec:   cfg.Dataset.DatasetSpec(loaded.BaseDir),
		options: game.Options{
			Round:   cfg.Board.Round,
			Board:   board.Options{Columns: cfg.Board.Categories, Ladder: cfg.Board.Ladder},
			Choices: choices.Options{ScanLimit: cfg.Choices.ScanLimit},
			Seed:    cfg.Game.Seed,
		},
		log: log,
	}, nil
}

func buildLogger(loaded config.Loaded, verbose bool, sink io.Writer) (*logger.Logger, error) {
	mode := loaded.Config.Log.Mode
	if path := loaded.Config.Log.File; path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(loaded.BaseDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		return logger.New(mode, path)
	}
	if verbose && sink != nil {
		return logger.NewWriter(mode, sink)
	}
	return logger.Nop(), nil
}

// loadSession opens and reads the configured dataset.
func (e *environment) loadSession(ctx context.Context) (*game.Session, error) {
	src, err := dataset.Open(e.spec)
	if err != nil {
		return nil, err
	}
	return game.Load(ctx, src, e.options, e.log)
}

// parseFlags parses command flags, printing usage on errors. It returns false
// with the exit code when the command should stop.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// rejectExtraArgs reports positional arguments a command does not accept.
func rejectExtraArgs(cmd *Command, flags *flag.FlagSet, stderr io.Writer) bool {
	if flags.NArg() == 0 {
		return false
	}
	fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
	printCommandUsage(cmd, stderr)
	return true
}
