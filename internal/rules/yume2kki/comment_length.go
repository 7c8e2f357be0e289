package yume2kki

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules/configutil"
)

// CommentLengthConfig is the configuration for the comment-length rule.
type CommentLengthConfig struct {
	// MaxWidth is the number of characters that fit on an unindented line of
	// the editor's comment box. Each indent level costs two characters.
	MaxWidth int `json:"max-width" koanf:"max-width"`
}

// DefaultCommentLengthConfig returns the default configuration.
func DefaultCommentLengthConfig() CommentLengthConfig {
	return CommentLengthConfig{MaxWidth: 56}
}

// CommentLengthRule flags comment lines that overflow the editor's comment
// box.
type CommentLengthRule struct{}

// NewCommentLengthRule creates a new comment-length rule instance.
func NewCommentLengthRule() *CommentLengthRule {
	return &CommentLengthRule{}
}

// Metadata returns the rule metadata.
func (r *CommentLengthRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "comment-length",
		Name:             "Comments should not be too long",
		Description:      "Comment lines must fit in the editor without wrapping",
		DefaultLevel:     rules.LevelWarning,
		Category:         "style",
		EnabledByDefault: true,
	}
}

// DefaultConfig returns the default configuration for this rule.
func (r *CommentLengthRule) DefaultConfig() any {
	return DefaultCommentLengthConfig()
}

// ValidateConfig validates the configuration.
func (r *CommentLengthRule) ValidateConfig(config any) error {
	if opts, ok := config.(map[string]any); ok {
		if err := configutil.CheckKeys[CommentLengthConfig](opts); err != nil {
			return err
		}
	}
	cfg := configutil.Coerce(config, DefaultCommentLengthConfig())
	if cfg.MaxWidth < 1 {
		return errors.New("max-width must be at least 1")
	}
	return nil
}

// Check runs the comment-length rule.
func (r *CommentLengthRule) Check(input rules.LintInput) []rules.Diagnostic {
	cfg := configutil.Coerce(input.Config, DefaultCommentLengthConfig())

	var diags []rules.Diagnostic
	for ei := range input.Document.Events {
		ev := &input.Document.Events[ei]
		for pi, page := range ev.Pages {
			for ci := range page.Commands {
				cmd := &page.Commands[ci]
				text, ok := commentText(cmd)
				if !ok {
					continue
				}
				limit := max(0, cfg.MaxWidth-cmd.Indent*2)
				if n := utf8.RuneCountInString(text); n > limit {
					diags = append(diags, rules.Warning(rules.CommandLocation(ev, pi, ci),
						fmt.Sprintf("%d/%d", n, limit)))
				}
			}
		}
	}
	return diags
}
