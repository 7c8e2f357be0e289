package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// reservedVariable is managed by common events only.
const reservedVariable = 44

// V44AssignmentRule flags map events that write to V0044.
type V44AssignmentRule struct{}

// NewV44AssignmentRule creates a new v44-assignment rule instance.
func NewV44AssignmentRule() *V44AssignmentRule {
	return &V44AssignmentRule{}
}

// Metadata returns the rule metadata.
func (r *V44AssignmentRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "v44-assignment",
		Name:             "V0044 should not be assigned to",
		Description:      "Map events must not write to V0044, directly or through a variable range",
		DefaultLevel:     rules.LevelError,
		Category:         "correctness",
		EnabledByDefault: true,
	}
}

// Check runs the v44-assignment rule.
func (r *V44AssignmentRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi, page := range ev.Pages {
			for ci := range page.Commands {
				if page.Commands[ci].TouchesVariable(reservedVariable) {
					diags = append(diags, rules.Error(rules.CommandLocation(ev, pi, ci), ""))
				}
			}
		}
	}
	return diags
}
