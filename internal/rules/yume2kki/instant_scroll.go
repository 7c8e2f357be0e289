package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// instantScrollSpeed is the speed value of a hand-written instant scroll.
const instantScrollSpeed = 53

// InstantScrollRule flags hand-written instant scrolls that should call the
// shared common event instead.
type InstantScrollRule struct{}

// NewInstantScrollRule creates a new instant-scroll rule instance.
func NewInstantScrollRule() *InstantScrollRule {
	return &InstantScrollRule{}
}

// Metadata returns the rule metadata.
func (r *InstantScrollRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "instant-scroll",
		Name:             "CEV0294 should be used for instant scroll",
		Description:      "Scroll Map at instant speed should be replaced by a call to CEV0294",
		DefaultLevel:     rules.LevelWarning,
		Category:         "style",
		EnabledByDefault: true,
	}
}

// Check runs the instant-scroll rule.
func (r *InstantScrollRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi, page := range ev.Pages {
			for ci, cmd := range page.Commands {
				if cmd.Code == lcf.OpScrollMap && cmd.ScrollSpeed() == instantScrollSpeed {
					diags = append(diags, rules.Warning(rules.CommandLocation(ev, pi, ci), ""))
				}
			}
		}
	}
	return diags
}
