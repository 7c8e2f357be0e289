// Package linter runs the rule registry against a single map.
//
// The pipeline: rule selection (suppression, include/exclude) → rule
// execution → processor chain (severity overrides, ordering, severity floor).
// Selection happens before any rule runs, so a suppressed rule never sees
// the document.
package linter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/processor"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	_ "github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules/all" // Register all rules.
)

// Options configures a Linter.
type Options struct {
	// Config is the resolved configuration. Nil means defaults.
	Config *config.Config

	// Suppress lists rule indexes that must not run.
	Suppress processor.Suppression

	// Floor is the severity floor applied to every report.
	Floor processor.Floor

	// Registry is the rule set. Nil means the default registry.
	Registry *rules.Registry

	// Logger receives debug output. Nil means silent.
	Logger logrus.FieldLogger
}

// SelectedRule is a rule that will run, with its registry index and options.
type SelectedRule struct {
	Index   int
	Rule    rules.Rule
	Options map[string]any
}

// Linter checks maps against a fixed selection of rules.
// A Linter is safe for concurrent use.
type Linter struct {
	selected []SelectedRule
	chain    *processor.Chain
	ctx      *processor.Context
	log      logrus.FieldLogger
}

// New resolves the rule selection for opts.
func New(opts Options) *Linter {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = rules.DefaultRegistry()
	}
	log := opts.Logger
	if log == nil {
		log = discardLogger()
	}

	return &Linter{
		selected: selectRules(reg, cfg, opts.Suppress, log),
		chain:    Processors(opts.Floor),
		ctx:      processor.NewContext(cfg),
		log:      log,
	}
}

// Rules returns the rules that run, in registry order.
func (l *Linter) Rules() []SelectedRule {
	out := make([]SelectedRule, len(l.selected))
	copy(out, l.selected)
	return out
}

// Lint runs every selected rule against doc and returns the filtered report.
func (l *Linter) Lint(doc *lcf.Document) rules.Report {
	results := make([]rules.Result, 0, len(l.selected))
	for _, sel := range l.selected {
		diags := sel.Rule.Check(rules.LintInput{Document: doc, Config: sel.Options})
		results = append(results, rules.Result{
			Index:       sel.Index,
			Rule:        sel.Rule.Metadata(),
			Diagnostics: diags,
		})
	}
	return rules.Report{Results: l.chain.Process(results, l.ctx)}
}

// LintFile loads the map at path and lints it. Load failures are returned
// as errors wrapping *lcf.DecodeError or the underlying I/O error.
func (l *Linter) LintFile(path string) (*rules.Report, error) {
	doc, err := lcf.LoadMap(path)
	if err != nil {
		return nil, err
	}
	l.log.WithField("map", path).WithField("events", len(doc.Events)).Debug("map loaded")
	report := l.Lint(doc)
	return &report, nil
}

// LintDocument is a convenience wrapper around New(opts).Lint(doc).
func LintDocument(doc *lcf.Document, opts Options) rules.Report {
	return New(opts).Lint(doc)
}

// LintFile is a convenience wrapper around New(opts).LintFile(path).
func LintFile(path string, opts Options) (*rules.Report, error) {
	return New(opts).LintFile(path)
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
