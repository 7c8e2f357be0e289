package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// skillsMarker is the comment annotation that documents a skill check.
const skillsMarker = "▽Skills"

// Conditional branch fields of "actor knows skill", which 2kki uses to
// record map completion.
const (
	branchModeActor       = 5
	branchActorMapStatus  = 2
	branchActorKnowsSkill = 4
)

// SpecialSkillsRule requires skill checks to be annotated with a comment.
type SpecialSkillsRule struct{}

// NewSpecialSkillsRule creates a new special-skills rule instance.
func NewSpecialSkillsRule() *SpecialSkillsRule {
	return &SpecialSkillsRule{}
}

// Metadata returns the rule metadata.
func (r *SpecialSkillsRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "special-skills",
		Name:             "Special skill usage must be annotated",
		Description:      "Branches on special skills need a preceding " + skillsMarker + " comment in the same event",
		DefaultLevel:     rules.LevelError,
		Category:         "documentation",
		EnabledByDefault: true,
	}
}

// Check runs the special-skills rule. An annotation excuses every later skill
// check of the same event.
func (r *SpecialSkillsRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		excused := false
		for pi, page := range ev.Pages {
			for ci := range page.Commands {
				cmd := &page.Commands[ci]
				if commentContainsAny(cmd, skillsMarker) {
					excused = true
					continue
				}
				if !excused && isSkillCheck(cmd) {
					diags = append(diags, rules.Error(rules.CommandLocation(ev, pi, ci), ""))
				}
			}
		}
	}
	return diags
}

func isSkillCheck(cmd *lcf.Command) bool {
	if cmd.Code != lcf.OpConditionalBranch {
		return false
	}
	mode, field1, field2 := cmd.BranchFields()
	return mode == branchModeActor && field1 == branchActorMapStatus && field2 == branchActorKnowsSkill
}
