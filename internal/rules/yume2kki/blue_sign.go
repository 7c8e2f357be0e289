package yume2kki

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// blueSignCharset holds the blue connection sign in cells 1 and 2.
const blueSignCharset = "system_kyouyu_gazou06"

// blueSignAnnotations mark a sign as documented: "reserved", 予約 (reserved)
// or 接続 (connection).
var blueSignAnnotations = []string{"eserved", "予約", "接続"}

// BlueSignRule requires blue signs to carry an annotation comment.
type BlueSignRule struct{}

// NewBlueSignRule creates a new blue-sign rule instance.
func NewBlueSignRule() *BlueSignRule {
	return &BlueSignRule{}
}

// Metadata returns the rule metadata.
func (r *BlueSignRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "blue-sign",
		Name:             "Blue signs must have annotations",
		Description:      "Events drawn as blue signs need a comment stating the reserved connection",
		DefaultLevel:     rules.LevelWarning,
		Category:         "documentation",
		EnabledByDefault: true,
	}
}

// Check runs the blue-sign rule.
func (r *BlueSignRule) Check(input rules.LintInput) []rules.Diagnostic {
	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		if isBlueSign(ev) && !hasBlueSignAnnotation(ev) {
			diags = append(diags, rules.Warning(rules.EventLocation(ev), ""))
		}
	}
	return diags
}

func isBlueSign(ev *lcf.Event) bool {
	for _, page := range ev.Pages {
		if page.Graphic.Index != 1 && page.Graphic.Index != 2 {
			continue
		}
		if lcf.DecodeShiftJIS(page.Graphic.File) == blueSignCharset {
			return true
		}
	}
	return false
}

func hasBlueSignAnnotation(ev *lcf.Event) bool {
	for _, page := range ev.Pages {
		for ci := range page.Commands {
			if commentContainsAny(&page.Commands[ci], blueSignAnnotations...) {
				return true
			}
		}
	}
	return false
}
