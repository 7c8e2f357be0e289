package rules

// Yume2kkiRulePrefix is the code prefix of the Yume 2kki map rules.
const Yume2kkiRulePrefix = "2kki/"

// Diagnostic is a single finding produced by a rule.
type Diagnostic struct {
	// Level is the severity of the finding.
	Level Level `json:"level"`

	// Location is where the finding is anchored. Nil means the finding is
	// about the map as a whole.
	Location *Location `json:"location,omitempty"`

	// Message is an optional human-readable explanation.
	Message string `json:"message,omitempty"`
}

// NewDiagnostic creates a diagnostic with the given fields.
func NewDiagnostic(level Level, loc *Location, message string) Diagnostic {
	return Diagnostic{Level: level, Location: loc, Message: message}
}

// Warning creates a warning diagnostic.
func Warning(loc *Location, message string) Diagnostic {
	return NewDiagnostic(LevelWarning, loc, message)
}

// Error creates an error diagnostic.
func Error(loc *Location, message string) Diagnostic {
	return NewDiagnostic(LevelError, loc, message)
}

// WithLevel returns a copy of the diagnostic with a different level.
func (d Diagnostic) WithLevel(level Level) Diagnostic {
	d.Level = level
	return d
}

// String renders the diagnostic as "<location>: <message>". Either part may
// be missing; a diagnostic with neither renders a placeholder.
func (d Diagnostic) String() string {
	switch {
	case d.Location != nil && d.Message != "":
		return d.Location.String() + ": " + d.Message
	case d.Location != nil:
		return d.Location.String()
	case d.Message != "":
		return d.Message
	default:
		return "<No information provided>"
	}
}

// Result is the outcome of one rule against one map.
type Result struct {
	// Index is the 1-based position of the rule in the registry.
	Index int `json:"index"`

	// Rule is the metadata of the rule that produced the result.
	Rule RuleMetadata `json:"rule"`

	// Diagnostics are the findings in scan order. Empty means clean.
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Clean reports whether the rule found nothing.
func (r Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// MaxLevel returns the most severe level among the diagnostics. The boolean
// is false for clean results.
func (r Result) MaxLevel() (Level, bool) {
	if r.Clean() {
		return LevelWarning, false
	}
	maxLevel := r.Diagnostics[0].Level
	for _, d := range r.Diagnostics[1:] {
		if d.Level > maxLevel {
			maxLevel = d.Level
		}
	}
	return maxLevel, true
}

// Report is the filtered, registry-ordered outcome of linting one map.
type Report struct {
	Results []Result `json:"results"`
}

// Count returns the number of warning and error diagnostics in the report.
func (r Report) Count() (warnings, errors int) {
	for _, res := range r.Results {
		for _, d := range res.Diagnostics {
			if d.Level == LevelError {
				errors++
			} else {
				warnings++
			}
		}
	}
	return warnings, errors
}
