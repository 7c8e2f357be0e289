package reporter

import (
	"encoding/json"
	"io"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// JSONOutput is the top-level structure for JSON output.
type JSONOutput struct {
	// Maps contains results grouped by map, ordered by id.
	Maps []MapResult `json:"maps"`
	// Summary contains aggregate statistics.
	Summary batch.Summary `json:"summary"`
	// RulesEnabled is the number of rules that ran on each map.
	RulesEnabled int `json:"rules_enabled"`
}

// MapResult contains the lint results for a single map.
type MapResult struct {
	Map     string       `json:"map"`
	ID      int          `json:"id"`
	Name    string       `json:"name,omitempty"`
	Error   string       `json:"error,omitempty"`
	Results []RuleResult `json:"results"`
}

// RuleResult is one rule's entry in a map's report.
type RuleResult struct {
	Index       int                `json:"index"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Clean       bool               `json:"clean"`
	Diagnostics []rules.Diagnostic `json:"diagnostics"`
}

// JSONReporter formats outcomes as JSON output.
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Report implements Reporter.
func (r *JSONReporter) Report(outcomes []batch.Outcome, metadata ReportMetadata) error {
	output := JSONOutput{
		Maps:         make([]MapResult, 0, len(outcomes)),
		Summary:      batch.Summarize(outcomes),
		RulesEnabled: metadata.RulesEnabled,
	}

	for _, o := range outcomes {
		m := MapResult{
			Map:     MapLabel(o),
			ID:      o.ID,
			Name:    o.Name,
			Results: []RuleResult{},
		}
		if o.Err != nil {
			m.Error = o.Err.Error()
		}
		if o.Report != nil {
			for _, res := range o.Report.Results {
				diags := res.Diagnostics
				if diags == nil {
					diags = []rules.Diagnostic{}
				}
				m.Results = append(m.Results, RuleResult{
					Index:       res.Index,
					Code:        res.Rule.Code,
					Name:        res.Rule.Name,
					Clean:       res.Clean(),
					Diagnostics: diags,
				})
			}
		}
		output.Maps = append(output.Maps, m)
	}

	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
