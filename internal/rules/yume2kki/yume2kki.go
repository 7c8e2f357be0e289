// Package yume2kki implements the map rules enforced on Yume 2kki
// contributions.
//
// Rules are registered in a fixed order. A rule's position in Rules is its
// 1-based index in reports and in suppression lists, so new rules are only
// ever appended.
package yume2kki

import (
	"strings"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Rules returns a fresh instance of every rule in registration order.
func Rules() []rules.Rule {
	return []rules.Rule{
		NewWeatherParityRule(),
		NewTissueEventsRule(),
		NewV44AssignmentRule(),
		NewInstantScrollRule(),
		NewSpecialSkillsRule(),
		NewCommentLengthRule(),
		NewShowPictureRule(),
		NewBlueSignRule(),
		NewPadeTransferRule(),
		NewParallelEraseRule(),
	}
}

func init() {
	for _, r := range Rules() {
		rules.Register(r)
	}
}

// commentText decodes the text of a comment command, or returns "" and false
// for any other command.
func commentText(cmd *lcf.Command) (string, bool) {
	if !cmd.IsComment() {
		return "", false
	}
	return lcf.DecodeShiftJIS(cmd.String), true
}

// commentContainsAny reports whether cmd is a comment whose text contains one
// of the given phrases.
func commentContainsAny(cmd *lcf.Command, phrases ...string) bool {
	text, ok := commentText(cmd)
	if !ok {
		return false
	}
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}
