package reporter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// GitHubActionsReporter formats outcomes as GitHub Actions workflow commands.
// These commands appear as annotations in the GitHub Actions UI.
//
// Format: ::{level} file={file},title={rule}::{location}: {message}
//
// Annotations are file-level; the event location leads the message.
//
// See: https://docs.github.com/actions/using-workflows/workflow-commands-for-github-actions#setting-an-error-message
type GitHubActionsReporter struct {
	writer io.Writer
}

// NewGitHubActionsReporter creates a new GitHub Actions reporter.
func NewGitHubActionsReporter(w io.Writer) *GitHubActionsReporter {
	return &GitHubActionsReporter{writer: w}
}

// Report implements Reporter.
func (r *GitHubActionsReporter) Report(outcomes []batch.Outcome, _ ReportMetadata) error {
	for _, o := range outcomes {
		if !o.Failed() {
			continue
		}
		if err := r.annotate(ghLevelError, o, "load-error", LoadErrorText(o.Err)); err != nil {
			return err
		}
	}

	for _, f := range findings(outcomes) {
		message := f.diagnostic.String()
		if f.diagnostic.Message == "" {
			message = f.result.Rule.Name
			if f.diagnostic.Location != nil {
				message = f.diagnostic.Location.String() + ": " + message
			}
		}
		if err := r.annotate(levelToGitHub(f.diagnostic.Level), *f.outcome, f.result.Rule.Code, message); err != nil {
			return err
		}
	}
	return nil
}

func (r *GitHubActionsReporter) annotate(level string, o batch.Outcome, title, message string) error {
	file := MapLabel(o)
	if o.Path != "" {
		file = filepath.ToSlash(o.Path)
	}
	_, err := fmt.Fprintf(r.writer, "::%s file=%s,title=%s::%s\n",
		level,
		escapeGitHubProperty(file),
		escapeGitHubProperty(title),
		escapeGitHubMessage(message),
	)
	return err
}

// GitHub Actions annotation levels.
const (
	ghLevelError   = "error"
	ghLevelWarning = "warning"
)

func levelToGitHub(l rules.Level) string {
	if l == rules.LevelError {
		return ghLevelError
	}
	return ghLevelWarning
}

// escapeGitHubMessage escapes special characters in GitHub Actions workflow command messages.
// Messages use escapeData() rules which escape "%", "\r", "\n" but NOT ":" or ",".
// See: https://github.com/actions/toolkit/blob/main/packages/core/src/command.ts
func escapeGitHubMessage(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeGitHubProperty escapes special characters in GitHub Actions workflow command properties.
// Properties (file, title, etc.) use escapeProperty() rules which escape "%", "\r", "\n", ":", and ",".
func escapeGitHubProperty(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}
