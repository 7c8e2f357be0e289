package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/discovery"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/linter"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/picker"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/processor"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/reporter"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/version"
)

// Exit codes
const (
	ExitSuccess     = 0 // Report written (findings do not change the exit code)
	ExitCancelled   = 1 // Map picker or run was cancelled
	ExitConfigError = 2 // Bad arguments, config, or unreadable target
	ExitNoMaps      = 3 // The game has no maps to check
)

// exitError carries an exit code up to runCheck, which prints it once.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error {
	return &exitError{code: code, err: err}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check a game or a single map for issues",
		ArgsUsage: "[PATH]",
		Flags:     checkFlags(),
		Action:    runCheck,
	}
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "all",
			Usage: "Check every map of the game instead of opening the map picker",
		},
		&cli.StringFlag{
			Name:    "level",
			Usage:   "Lowest severity to report: all, warn, error",
			Sources: cli.EnvVars("LCF_VALIDATE_LEVEL"),
		},
		&cli.StringFlag{
			Name:  "suppress",
			Usage: "Comma-separated rule indexes to skip (see 'rules'), e.g. 1,3",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Maps checked in parallel (0 = one per CPU)",
			Sources: cli.EnvVars("LCF_VALIDATE_JOBS"),
		},
		&cli.StringFlag{
			Name:    "encoding",
			Usage:   "Code page of map names: " + strings.Join(lcf.CodePageNames(), ", "),
			Sources: cli.EnvVars("LCF_VALIDATE_ENCODING"),
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: " + strings.Join(reporter.Formats(), ", "),
			Sources: cli.EnvVars("LCF_VALIDATE_FORMAT", "LCF_VALIDATE_OUTPUT_FORMAT"),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output path: stdout, stderr, or file path",
			Sources: cli.EnvVars("LCF_VALIDATE_OUTPUT_PATH"),
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Usage:   "Disable colored output",
			Sources: cli.EnvVars("NO_COLOR"),
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to config file (default: auto-discover)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob pattern of map file names to skip (can be repeated)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log progress to stderr",
		},
		&cli.BoolFlag{
			Name:    "no-pause",
			Usage:   "Do not wait for enter before exiting",
			Sources: cli.EnvVars("LCF_VALIDATE_NO_PAUSE"),
		},
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	if shouldPause(cmd.Bool("no-pause")) {
		defer pause(os.Stderr, os.Stdin)
	}

	if err := check(ctx, cmd); err != nil {
		var ee *exitError
		if !errors.As(err, &ee) {
			ee = &exitError{code: ExitConfigError, err: err}
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", ee.err)
		return cli.Exit("", ee.code)
	}
	return nil
}

func check(ctx context.Context, cmd *cli.Command) error {
	path := "."
	if cmd.Args().Len() > 0 {
		path = cmd.Args().First()
	}
	if cmd.Args().Len() > 1 {
		return fail(ExitConfigError, fmt.Errorf("expected one path, got %d", cmd.Args().Len()))
	}

	overrides, err := buildOverrides(cmd)
	if err != nil {
		return fail(ExitConfigError, err)
	}

	target, err := discovery.Resolve(path)
	if err != nil {
		return fail(ExitConfigError, err)
	}

	configBase := target.GameDir
	if target.Kind == discovery.TargetMap {
		configBase = filepath.Dir(target.MapPath)
	}
	cfg, err := config.LoadWithOverrides(configBase, cmd.String("config"), overrides)
	if err != nil {
		return fail(ExitConfigError, fmt.Errorf("failed to load config: %w", err))
	}
	if err := cfg.ValidateRules(rules.DefaultRegistry()); err != nil {
		return fail(ExitConfigError, fmt.Errorf("invalid config: %w", err))
	}

	log := newLogger(os.Stderr, cfg.Log.Level, cmd.Bool("verbose"))
	if cfg.ConfigFile != "" {
		log.WithField("path", cfg.ConfigFile).Debug("config loaded")
	}

	floor, err := processor.ParseFloor(cfg.Level)
	if err != nil {
		return fail(ExitConfigError, err)
	}
	cp, err := lcf.ParseCodePage(cfg.Encoding)
	if err != nil {
		return fail(ExitConfigError, err)
	}
	format, err := reporter.ParseFormat(cfg.Output.Format)
	if err != nil {
		return fail(ExitConfigError, err)
	}

	l := linter.New(linter.Options{
		Config:   cfg,
		Suppress: processor.NewSuppression(cfg.Suppress...),
		Floor:    floor,
		Logger:   log,
	})

	jobs, err := selectJobs(target, cmd.Bool("all"), discovery.Options{
		ExcludePatterns: cfg.Exclude,
		CodePage:        cp,
	}, interactive())
	if err != nil {
		return err
	}

	outcomes, err := runJobs(ctx, l, jobs, cfg.Jobs, log)
	if err != nil {
		return fail(ExitCancelled, err)
	}

	if err := writeReport(outcomes, cfg, format, target.GameDir, len(l.Rules())); err != nil {
		return fail(ExitConfigError, err)
	}

	// A single map that cannot be read is an error of the invocation itself.
	if target.Kind == discovery.TargetMap && len(outcomes) == 1 && outcomes[0].Failed() {
		return fail(ExitConfigError, errors.New(reporter.LoadErrorText(outcomes[0].Err)))
	}
	return nil
}

// buildOverrides converts explicitly set flags into config overrides with
// the same nested shape as the TOML file.
func buildOverrides(cmd *cli.Command) (map[string]any, error) {
	overrides := map[string]any{}
	output := map[string]any{}

	if cmd.IsSet("level") {
		overrides["level"] = strings.ToLower(cmd.String("level"))
	}
	if cmd.IsSet("suppress") {
		s, err := processor.ParseSuppress(cmd.String("suppress"))
		if err != nil {
			return nil, fmt.Errorf("--suppress: %w", err)
		}
		overrides["suppress"] = s.Indexes()
	}
	if cmd.IsSet("jobs") {
		overrides["jobs"] = cmd.Int("jobs")
	}
	if cmd.IsSet("encoding") {
		overrides["encoding"] = cmd.String("encoding")
	}
	if cmd.IsSet("exclude") {
		overrides["exclude"] = cmd.StringSlice("exclude")
	}
	if cmd.IsSet("format") {
		output["format"] = cmd.String("format")
	}
	if cmd.IsSet("output") {
		output["path"] = cmd.String("output")
	}
	if cmd.IsSet("no-color") {
		output["no-color"] = cmd.Bool("no-color")
	}
	if len(output) > 0 {
		overrides["output"] = output
	}
	return overrides, nil
}

// chooser picks one map out of a game. It is nil when no terminal is
// attached.
type chooser func(title string, entries []picker.Entry) (picker.Entry, error)

func interactive() chooser {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return nil
	}
	return func(title string, entries []picker.Entry) (picker.Entry, error) {
		return picker.Run(title, entries)
	}
}

// selectJobs turns a resolved target into the maps to check.
func selectJobs(target discovery.Target, all bool, opts discovery.Options, choose chooser) ([]batch.Job, error) {
	if target.Kind == discovery.TargetMap {
		return []batch.Job{mapJob(target.MapPath)}, nil
	}

	tree, err := discovery.LoadTree(target.GameDir)
	if err != nil {
		return nil, fail(ExitConfigError, fmt.Errorf("failed to read map tree: %w", err))
	}

	if all {
		jobs, err := discovery.MapJobs(target.GameDir, tree, opts)
		if err != nil {
			return nil, fail(ExitConfigError, err)
		}
		if len(jobs) == 0 {
			return nil, fail(ExitNoMaps, discovery.ErrNoMaps)
		}
		return jobs, nil
	}

	if choose == nil {
		return nil, fail(ExitConfigError, errors.New("no terminal for the map picker; pass --all or a map file"))
	}
	entries := picker.Entries(tree, opts.CodePage)
	if len(entries) == 0 {
		return nil, fail(ExitNoMaps, discovery.ErrNoMaps)
	}
	entry, err := choose("Select a map", entries)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			return nil, fail(ExitCancelled, err)
		}
		return nil, fail(ExitConfigError, err)
	}
	return []batch.Job{{
		ID:   entry.ID,
		Name: entry.Name,
		Path: filepath.Join(target.GameDir, discovery.MapFileName(entry.ID)),
	}}, nil
}

// mapJob builds the job for a map unit given on the command line. The id is
// taken from a MapXXXX.lmu file name and is 0 otherwise.
func mapJob(path string) batch.Job {
	var id int
	base := strings.ToLower(filepath.Base(path))
	if _, err := fmt.Sscanf(base, "map%d.lmu", &id); err != nil {
		id = 0
	}
	return batch.Job{ID: id, Path: path}
}

func runJobs(ctx context.Context, l *linter.Linter, jobs []batch.Job, workers int, log logrus.FieldLogger) ([]batch.Outcome, error) {
	spin := startProgress(len(jobs))
	defer spin.Stop()

	return batch.Run(ctx, jobs, func(_ context.Context, job batch.Job) (*rules.Report, error) {
		return l.LintFile(job.Path)
	}, batch.Options{
		Workers:  workers,
		Progress: spin.Update,
		Logger:   log,
	})
}

func writeReport(outcomes []batch.Outcome, cfg *config.Config, format reporter.Format, gameDir string, rulesEnabled int) error {
	writer, closeWriter, err := reporter.GetWriter(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		if err := closeWriter(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close output: %v\n", err)
		}
	}()

	return reportTo(writer, outcomes, cfg, format, gameDir, rulesEnabled)
}

func reportTo(w io.Writer, outcomes []batch.Outcome, cfg *config.Config, format reporter.Format, gameDir string, rulesEnabled int) error {
	opts := reporter.DefaultOptions()
	opts.Format = format
	opts.Writer = w
	opts.ToolVersion = version.RawVersion()
	if cfg.Output.NoColor {
		noColor := false
		opts.Color = &noColor
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return err
	}
	return rep.Report(outcomes, reporter.ReportMetadata{
		GameDir:      gameDir,
		RulesEnabled: rulesEnabled,
	})
}
