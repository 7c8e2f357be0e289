package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules/configutil"
)

// SeverityOff disables a rule from its config section.
const SeverityOff = "off"

// yume2kkiNamespace is the only rule namespace.
const yume2kkiNamespace = "2kki"

// RuleConfig is one [rules.2kki.<name>] table. Keys other than severity are
// handed to the rule as options:
//
//	[rules.2kki.comment-length]
//	severity = "error"
//	max-width = 60
type RuleConfig struct {
	// Severity replaces the level of every diagnostic of the rule. "off"
	// keeps the rule from running.
	Severity string `json:"severity,omitempty" koanf:"severity"`

	Options map[string]any `json:"-" koanf:",remain"`
}

// RulesConfig selects rules and holds their sections.
//
//	[rules]
//	include = ["2kki/parallel-erase"]
//	exclude = ["2kki/show-*"]
//
//	[rules.2kki.tissue-events]
//	expected = 6
type RulesConfig struct {
	// Include and Exclude hold glob patterns over rule codes, e.g. "2kki/*".
	// A rule matched by both is enabled.
	Include []string `json:"include,omitempty" koanf:"include"`
	Exclude []string `json:"exclude,omitempty" koanf:"exclude"`

	// Yume2kki holds the sections of 2kki/* rules keyed by rule name.
	Yume2kki map[string]RuleConfig `json:"2kki,omitempty" koanf:"2kki"`
}

// splitCode splits "2kki/blue-sign" into its namespace and name.
func splitCode(code string) (ns, name string) {
	ns, name, ok := strings.Cut(code, "/")
	if !ok {
		return "", code
	}
	return ns, name
}

// Get returns a copy of the section of a rule, or nil.
func (rc *RulesConfig) Get(code string) *RuleConfig {
	if rc == nil {
		return nil
	}
	ns, name := splitCode(code)
	if ns != yume2kkiNamespace {
		return nil
	}
	cfg, ok := rc.Yume2kki[name]
	if !ok {
		return nil
	}
	return &cfg
}

// Set stores the section of a rule. It reports false for codes outside the
// 2kki namespace.
func (rc *RulesConfig) Set(code string, cfg RuleConfig) bool {
	ns, name := splitCode(code)
	if ns != yume2kkiNamespace {
		return false
	}
	if rc.Yume2kki == nil {
		rc.Yume2kki = make(map[string]RuleConfig)
	}
	rc.Yume2kki[name] = cfg
	return true
}

// Codes lists the rules that have a section, sorted.
func (rc *RulesConfig) Codes() []string {
	if rc == nil {
		return nil
	}
	codes := make([]string, 0, len(rc.Yume2kki))
	for name := range rc.Yume2kki {
		codes = append(codes, yume2kkiNamespace+"/"+name)
	}
	slices.Sort(codes)
	return codes
}

// IsEnabled returns the explicit on/off state of a rule, or nil when the
// rule default applies. Severity "off" disables; otherwise Include beats
// Exclude.
func (rc *RulesConfig) IsEnabled(code string) *bool {
	if rc == nil {
		return nil
	}
	var enabled bool
	switch {
	case rc.GetSeverity(code) == SeverityOff:
		enabled = false
	case matchesAnyPattern(code, rc.Include):
		enabled = true
	case matchesAnyPattern(code, rc.Exclude):
		enabled = false
	default:
		return nil
	}
	return &enabled
}

// GetSeverity returns the lower-cased severity override of a rule or "".
func (rc *RulesConfig) GetSeverity(code string) string {
	if cfg := rc.Get(code); cfg != nil {
		return strings.ToLower(cfg.Severity)
	}
	return ""
}

// GetOptions returns a shallow copy of the options of a rule, or nil.
func (rc *RulesConfig) GetOptions(code string) map[string]any {
	cfg := rc.Get(code)
	if cfg == nil || cfg.Options == nil {
		return nil
	}
	return maps.Clone(cfg.Options)
}

// DecodeRuleOptions decodes the options of a rule over defaults.
func DecodeRuleOptions[T any](rc *RulesConfig, code string, defaults T) T {
	return configutil.Resolve(rc.GetOptions(code), defaults)
}

func matchesAnyPattern(code string, patterns []string) bool {
	return slices.ContainsFunc(patterns, func(p string) bool {
		return matchesPattern(code, p)
	})
}

// matchesPattern matches a rule code against a glob such as "2kki/*" or
// "2kki/{blue-sign,show-picture}". A bare "*" matches every rule. Malformed
// patterns match nothing.
func matchesPattern(code, pattern string) bool {
	if pattern == "*" {
		return true
	}
	ok, err := doublestar.Match(pattern, code)
	return err == nil && ok
}
