package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// MarkdownReporter formats outcomes as one markdown table per map.
type MarkdownReporter struct {
	writer io.Writer
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(w io.Writer) *MarkdownReporter {
	return &MarkdownReporter{writer: w}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(outcomes []batch.Outcome, _ ReportMetadata) error {
	summary := batch.Summarize(outcomes)
	if summary.Warnings+summary.Errors+summary.Failed == 0 {
		_, err := fmt.Fprintln(r.writer, "**No issues found**")
		return err
	}

	issues := summary.Warnings + summary.Errors
	if _, err := fmt.Fprintf(r.writer, "**%d %s** across %d %s",
		issues, pluralize(issues, "issue", "issues"),
		summary.Maps, pluralize(summary.Maps, "map", "maps")); err != nil {
		return err
	}
	if summary.Failed > 0 {
		if _, err := fmt.Fprintf(r.writer, ", %d failed to load", summary.Failed); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(r.writer); err != nil {
		return err
	}

	for _, o := range outcomes {
		if err := r.writeMap(o); err != nil {
			return err
		}
	}
	return nil
}

func (r *MarkdownReporter) writeMap(o batch.Outcome) error {
	if o.Err != nil {
		_, err := fmt.Fprintf(r.writer, "\n### `%s`\n\n❌ %s\n", MapLabel(o), escapeMarkdown(LoadErrorText(o.Err)))
		return err
	}
	if o.Report == nil {
		return nil
	}
	w, e := o.Report.Count()
	if w+e == 0 {
		return nil
	}

	title := MapLabel(o)
	if o.Name != "" {
		title = fmt.Sprintf("%s (%s)", title, o.Name)
	}
	if _, err := fmt.Fprintf(r.writer, "\n### `%s`\n\n", escapeMarkdown(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "| # | Rule | Location | Issue |"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.writer, "|---|------|----------|-------|"); err != nil {
		return err
	}

	for _, res := range o.Report.Results {
		for _, d := range res.Diagnostics {
			loc := "-"
			if d.Location != nil {
				loc = d.Location.String()
			}
			msg := d.Message
			if msg == "" {
				msg = res.Rule.Name
			}
			if _, err := fmt.Fprintf(r.writer, "| %d | %s | %s | %s %s |\n",
				res.Index, res.Rule.Code, loc, levelEmoji(d.Level), escapeMarkdown(msg)); err != nil {
				return err
			}
		}
	}
	return nil
}

// levelEmoji returns an emoji indicator for the level.
func levelEmoji(l rules.Level) string {
	if l == rules.LevelError {
		return "❌"
	}
	return "⚠️"
}

// escapeMarkdown escapes special markdown characters in table cells.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break table formatting
	s = strings.ReplaceAll(s, "|", "\\|")
	// Replace newlines with spaces
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// pluralize returns singular or plural form based on count.
func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
