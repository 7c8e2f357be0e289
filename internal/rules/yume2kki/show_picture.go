package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// ShowPictureRule flags Show Picture commands.
type ShowPictureRule struct{}

// NewShowPictureRule creates a new show-picture rule instance.
func NewShowPictureRule() *ShowPictureRule {
	return &ShowPictureRule{}
}

// Metadata returns the rule metadata.
func (r *ShowPictureRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "show-picture",
		Name:             "MovePicture is preferrable to ShowPicture",
		Description:      "Pictures should be repositioned with Move Picture instead of shown again",
		DefaultLevel:     rules.LevelWarning,
		Category:         "performance",
		EnabledByDefault: true,
	}
}

// Check runs the show-picture rule.
func (r *ShowPictureRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi, page := range ev.Pages {
			for ci, cmd := range page.Commands {
				if cmd.Code == lcf.OpShowPicture {
					diags = append(diags, rules.Warning(rules.CommandLocation(ev, pi, ci), ""))
				}
			}
		}
	}
	return diags
}
