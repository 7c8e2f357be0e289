package reporter

import (
	"io"
	"path/filepath"
	"sort"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Default SARIF tool information.
const (
	defaultToolName = "lcf-validate"
	defaultToolURI  = "https://github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki"
)

// loadErrorRuleID is the SARIF rule used for maps that failed to load.
const loadErrorRuleID = "load-error"

// SARIFReporter formats outcomes as SARIF (Static Analysis Results Interchange Format).
//
// Map units are artifacts. A diagnostic's event, page and command become a
// logical location.
//
// See: https://docs.oasis-open.org/sarif/sarif/v2.1.0/
type SARIFReporter struct {
	writer      io.Writer
	toolName    string
	toolVersion string
	toolURI     string
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(w io.Writer, toolName, toolVersion, toolURI string) *SARIFReporter {
	if toolName == "" {
		toolName = defaultToolName
	}
	if toolURI == "" {
		toolURI = defaultToolURI
	}
	return &SARIFReporter{
		writer:      w,
		toolName:    toolName,
		toolVersion: toolVersion,
		toolURI:     toolURI,
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(outcomes []batch.Outcome, _ ReportMetadata) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(r.toolName, r.toolURI)
	if r.toolVersion != "" {
		run.Tool.Driver.WithVersion(r.toolVersion)
	}

	all := findings(outcomes)

	// Rule definitions, one per code that produced something.
	ruleSet := make(map[string]rules.RuleMetadata)
	hasLoadErrors := false
	for _, f := range all {
		if _, exists := ruleSet[f.result.Rule.Code]; !exists {
			ruleSet[f.result.Rule.Code] = f.result.Rule
		}
	}
	for _, o := range outcomes {
		if o.Failed() {
			hasLoadErrors = true
		}
	}

	ruleCodes := make([]string, 0, len(ruleSet))
	for code := range ruleSet {
		ruleCodes = append(ruleCodes, code)
	}
	sort.Strings(ruleCodes)

	for _, code := range ruleCodes {
		meta := ruleSet[code]
		rule := run.AddRule(code).WithName(meta.Name)
		if meta.Description != "" {
			rule.WithShortDescription(sarif.NewMultiformatMessageString().WithText(meta.Description))
		}
	}
	if hasLoadErrors {
		run.AddRule(loadErrorRuleID).
			WithShortDescription(sarif.NewMultiformatMessageString().WithText("The map file could not be read or decoded"))
	}

	// Artifacts, one per map.
	for _, o := range outcomes {
		run.AddDistinctArtifact(artifactPath(o))
	}

	for _, o := range outcomes {
		if !o.Failed() {
			continue
		}
		result := sarif.NewRuleResult(loadErrorRuleID).
			WithMessage(sarif.NewTextMessage(LoadErrorText(o.Err))).
			WithLevel(sarifLevelError).
			WithLocations([]*sarif.Location{mapLocation(o)})
		run.AddResult(result)
	}

	for _, f := range all {
		result := sarif.NewRuleResult(f.result.Rule.Code).
			WithMessage(sarif.NewTextMessage(diagnosticMessage(f))).
			WithLevel(levelToSARIF(f.diagnostic.Level))

		loc := mapLocation(*f.outcome)
		if f.diagnostic.Location != nil {
			loc.WithLogicalLocations([]*sarif.LogicalLocation{
				sarif.NewLogicalLocation().
					WithFullyQualifiedName(f.diagnostic.Location.String()).
					WithKind(logicalKind(f.diagnostic.Location)),
			})
		}
		result.WithLocations([]*sarif.Location{loc})
		run.AddResult(result)
	}

	report.AddRun(run)
	return report.PrettyWrite(r.writer)
}

func artifactPath(o batch.Outcome) string {
	if o.Path == "" {
		return MapLabel(o)
	}
	return filepath.ToSlash(o.Path)
}

func mapLocation(o batch.Outcome) *sarif.Location {
	physical := sarif.NewPhysicalLocation().
		WithArtifactLocation(sarif.NewSimpleArtifactLocation(artifactPath(o)))
	return sarif.NewLocationWithPhysicalLocation(physical)
}

// diagnosticMessage falls back to the rule name when the diagnostic has no
// message.
func diagnosticMessage(f finding) string {
	if f.diagnostic.Message != "" {
		return f.diagnostic.Message
	}
	return f.result.Rule.Name
}

func logicalKind(loc *rules.Location) string {
	switch {
	case loc.HasCommand():
		return "command"
	case loc.HasPage():
		return "page"
	default:
		return "event"
	}
}

// SARIF severity levels.
const (
	sarifLevelError   = "error"
	sarifLevelWarning = "warning"
)

func levelToSARIF(l rules.Level) string {
	if l == rules.LevelError {
		return sarifLevelError
	}
	return sarifLevelWarning
}
