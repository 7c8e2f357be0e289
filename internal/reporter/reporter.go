// Package reporter renders batch outcomes.
//
// Supported formats:
//   - text: the classic terminal listing, one block per map
//   - json: machine-readable JSON output
//   - sarif: Static Analysis Results Interchange Format for code scanning
//   - github-actions: workflow annotations
//   - markdown: one table per map
package reporter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// ReportMetadata contains contextual information about the lint run.
type ReportMetadata struct {
	// GameDir is the game directory, empty for a single map.
	GameDir string
	// RulesEnabled is the number of rules that ran on each map.
	RulesEnabled int
}

// Reporter formats and outputs outcomes. Outcomes arrive ordered by map id.
type Reporter interface {
	Report(outcomes []batch.Outcome, metadata ReportMetadata) error
}

// Format represents an output format type.
type Format string

const (
	// FormatText is human-readable terminal output.
	FormatText Format = "text"
	// FormatJSON is machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatSARIF is Static Analysis Results Interchange Format.
	FormatSARIF Format = "sarif"
	// FormatGitHubActions is GitHub Actions workflow command output.
	FormatGitHubActions Format = "github-actions"
	// FormatMarkdown is markdown tables.
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatSARIF), string(FormatGitHubActions), string(FormatMarkdown)}
}

// ParseFormat parses a format string into a Format type.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	case "github-actions", "github":
		return FormatGitHubActions, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format: %q (valid: text, json, sarif, github-actions, markdown)", s)
	}
}

// Options configures reporter creation.
type Options struct {
	// Format specifies the output format.
	Format Format

	// Writer is the output destination.
	Writer io.Writer

	// Color enables/disables colored output (text format only).
	// nil means auto-detect.
	Color *bool

	// ToolVersion is included in SARIF output.
	ToolVersion string

	// ToolName is the tool name for SARIF output.
	ToolName string

	// ToolURI is the tool information URI for SARIF output.
	ToolURI string
}

// DefaultOptions returns sensible defaults for reporter options.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		Writer:      os.Stdout,
		ToolName:    defaultToolName,
		ToolURI:     defaultToolURI,
		ToolVersion: "dev",
	}
}

// New creates a reporter based on the format specified in options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts.Writer, TextOptions{Color: opts.Color}), nil
	case FormatJSON:
		return NewJSONReporter(opts.Writer), nil
	case FormatSARIF:
		return NewSARIFReporter(opts.Writer, opts.ToolName, opts.ToolVersion, opts.ToolURI), nil
	case FormatGitHubActions:
		return NewGitHubActionsReporter(opts.Writer), nil
	case FormatMarkdown:
		return NewMarkdownReporter(opts.Writer), nil
	default:
		return nil, fmt.Errorf("unknown format: %q", opts.Format)
	}
}

// GetWriter returns an io.Writer for the given output path.
// Supports "stdout", "stderr", or file paths.
func GetWriter(path string) (io.Writer, func() error, error) {
	switch path {
	case "stdout", "":
		return os.Stdout, func() error { return nil }, nil
	case "stderr":
		return os.Stderr, func() error { return nil }, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		return f, f.Close, nil
	}
}

// MapLabel is the display name of an outcome's map file.
func MapLabel(o batch.Outcome) string {
	if o.Path != "" {
		return filepath.Base(o.Path)
	}
	return fmt.Sprintf("Map%04d.lmu", o.ID)
}

// LoadErrorText renders a load failure the way the text listing shows it.
// Decode failures are prefixed so they read apart from I/O errors.
func LoadErrorText(err error) string {
	var decodeErr *lcf.DecodeError
	if errors.As(err, &decodeErr) {
		return "Invalid map file: " + err.Error()
	}
	return err.Error()
}

// finding is one diagnostic with the map and rule it belongs to.
type finding struct {
	outcome    *batch.Outcome
	result     *rules.Result
	diagnostic rules.Diagnostic
}

// findings flattens outcomes into diagnostics in map, rule, then scan order.
func findings(outcomes []batch.Outcome) []finding {
	var out []finding
	for i := range outcomes {
		o := &outcomes[i]
		if o.Report == nil {
			continue
		}
		for j := range o.Report.Results {
			res := &o.Report.Results[j]
			for _, d := range res.Diagnostics {
				out = append(out, finding{outcome: o, result: res, diagnostic: d})
			}
		}
	}
	return out
}
