package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Map events that lock and unlock player movement during a cutscene.
const (
	padeEvent   = 8
	unpadeEvent = 9
)

// padeTransferExemption is the comment stating that the destination map
// unlocks movement itself.
const padeTransferExemption = "移動先マップで直接「ｲﾍﾞﾝﾄ中動作禁止解除」しています。"

// PadeTransferRule flags pages that transfer the player while movement is
// locked. Unlocking later on the same page does not help: the transfer has
// already happened with the player locked.
type PadeTransferRule struct{}

// NewPadeTransferRule creates a new pade-transfer rule instance.
func NewPadeTransferRule() *PadeTransferRule {
	return &PadeTransferRule{}
}

// Metadata returns the rule metadata.
func (r *PadeTransferRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "pade-transfer",
		Name:             "Transitioning maps should be unPADEed",
		Description:      "Movement locked with EV0008 must be unlocked with EV0009 before transferring the player",
		DefaultLevel:     rules.LevelError,
		Category:         "correctness",
		EnabledByDefault: true,
	}
}

// Check runs the pade-transfer rule.
//
// Any comment other than the exemption phrase also silences the page.
func (r *PadeTransferRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi := range ev.Pages {
			if transfersWhileLocked(ev.Pages[pi].Commands) {
				diags = append(diags, rules.Error(rules.PageLocation(ev, pi), ""))
			}
		}
	}
	return diags
}

func transfersWhileLocked(cmds []lcf.Command) bool {
	var locked, violated, ignored bool
	for ci := range cmds {
		cmd := &cmds[ci]
		switch cmd.Code { //nolint:exhaustive // other commands do not affect the lock
		case lcf.OpCallEvent:
			mode, index := cmd.CallTarget()
			if mode != 0 {
				continue
			}
			switch index {
			case padeEvent:
				locked = true
			case unpadeEvent:
				locked = false
			}
		case lcf.OpTransferPlayer:
			if locked {
				violated = true
			}
		case lcf.OpComment, lcf.OpCommentNextLine:
			if !commentContainsAny(cmd, padeTransferExemption) {
				ignored = true
			}
		}
	}
	return violated && !ignored
}
