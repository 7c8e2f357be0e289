package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// ParallelEraseRule flags parallel pages that replay expensive commands
// every frame because they never erase themselves.
type ParallelEraseRule struct{}

// NewParallelEraseRule creates a new parallel-erase rule instance.
func NewParallelEraseRule() *ParallelEraseRule {
	return &ParallelEraseRule{}
}

// Metadata returns the rule metadata.
func (r *ParallelEraseRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "parallel-erase",
		Name:             "Laggy parallel events should be erased after running",
		Description:      "Parallel pages that play music or show pictures should end with Erase Event",
		DefaultLevel:     rules.LevelWarning,
		Category:         "performance",
		EnabledByDefault: false,
		IsExperimental:   true,
	}
}

// Check runs the parallel-erase rule.
func (r *ParallelEraseRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi, page := range ev.Pages {
			if page.Trigger != lcf.TriggerParallel {
				continue
			}
			laggy, erased := false, false
			for _, cmd := range page.Commands {
				switch cmd.Code { //nolint:exhaustive // only these commands matter
				case lcf.OpPlayBGM, lcf.OpMovePicture, lcf.OpShowPicture:
					laggy = true
				case lcf.OpEraseEvent:
					erased = true
				}
			}
			if laggy && !erased {
				diags = append(diags, rules.Warning(rules.PageLocation(ev, pi), ""))
			}
		}
	}
	return diags
}
