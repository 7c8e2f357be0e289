package reporter

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

var (
	// Color detection using termenv (respects NO_COLOR, CLICOLOR_FORCE, terminal detection)
	useColors = termenv.EnvColorProfile() != termenv.Ascii

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // Green

	levelStyles = map[rules.Level]lipgloss.Style{
		rules.LevelWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")), // Yellow
		rules.LevelError: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")), // Red
	}

	invalidLabelStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("9"))

	loadErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// TextOptions configures the text reporter output.
type TextOptions struct {
	// Color enables/disables colored output. Default: auto-detect.
	Color *bool
}

// TextReporter prints, for every map with something to show, the map file
// name followed by one indented line per clean rule or diagnostic.
type TextReporter struct {
	writer io.Writer
	color  bool
}

// NewTextReporter creates a new text reporter with the given options.
func NewTextReporter(w io.Writer, opts TextOptions) *TextReporter {
	color := useColors
	if opts.Color != nil {
		color = *opts.Color
	}
	return &TextReporter{writer: w, color: color}
}

// Report implements Reporter.
func (r *TextReporter) Report(outcomes []batch.Outcome, _ ReportMetadata) error {
	for _, o := range outcomes {
		if err := r.printOutcome(o); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) printOutcome(o batch.Outcome) error {
	if o.Err == nil && (o.Report == nil || len(o.Report.Results) == 0) {
		return nil
	}
	if _, err := fmt.Fprintf(r.writer, "%s:\n", MapLabel(o)); err != nil {
		return err
	}

	if o.Err != nil {
		_, err := fmt.Fprintf(r.writer, "  %s\n", r.loadError(o.Err))
		return err
	}

	for _, res := range o.Report.Results {
		if res.Clean() {
			if _, err := fmt.Fprintf(r.writer, "  %s\n", r.render(cleanStyle, res.Rule.Name)); err != nil {
				return err
			}
			continue
		}
		for _, d := range res.Diagnostics {
			name := r.render(levelStyles[d.Level], res.Rule.Name)
			if _, err := fmt.Fprintf(r.writer, "  %s: %s\n", name, d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *TextReporter) loadError(err error) string {
	var decodeErr *lcf.DecodeError
	if errors.As(err, &decodeErr) {
		return r.render(invalidLabelStyle, "Invalid map file") + ": " + r.render(loadErrorStyle, err.Error())
	}
	return r.render(loadErrorStyle, err.Error())
}

func (r *TextReporter) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
