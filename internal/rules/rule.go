package rules

import "github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"

// LintInput contains everything a rule needs to check one map.
//
// LintInput is read-only. Rules must not mutate the Document or anything it
// points to; the same Document is shared by every rule of a run.
type LintInput struct {
	// Document is the decoded map (guaranteed non-nil).
	Document *lcf.Document

	// Config is the rule-specific configuration (type depends on rule).
	Config any
}

// RuleMetadata contains static information about a rule.
type RuleMetadata struct {
	// Code is the unique identifier (e.g., "2kki/weather-parity").
	Code string `json:"code"`

	// Name is the human-readable rule name shown in reports.
	Name string `json:"name"`

	// Description explains what the rule checks.
	Description string `json:"description"`

	// DefaultLevel is the level of the diagnostics the rule emits most often.
	// Used for documentation and the rule catalogue; individual diagnostics
	// carry their own level.
	DefaultLevel Level `json:"defaultLevel"`

	// Category groups related rules (e.g., "events", "style").
	Category string `json:"category"`

	// EnabledByDefault indicates if the rule runs without explicit opt-in.
	EnabledByDefault bool `json:"enabledByDefault"`

	// IsExperimental marks rules that may change or be removed.
	IsExperimental bool `json:"isExperimental,omitempty"`
}

// Rule is the interface that all linting rules must implement.
//
// Check must be a pure function of its input: it may be called concurrently
// for different documents and must not keep state between calls.
type Rule interface {
	// Metadata returns static information about the rule.
	Metadata() RuleMetadata

	// Check runs the rule against the given input and returns its findings in
	// scan order. An empty result means the map is clean for this rule.
	Check(input LintInput) []Diagnostic
}

// ConfigurableRule is an optional interface for rules that accept configuration.
type ConfigurableRule interface {
	Rule

	// DefaultConfig returns the default configuration for this rule.
	DefaultConfig() any

	// ValidateConfig checks if a configuration is valid for this rule.
	ValidateConfig(config any) error
}
