package yume2kki

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules/configutil"
)

var (
	// tissueAnchorName is the name of the event that places the tissues.
	tissueAnchorName = lcf.EncodeShiftJIS("ティッシュ++++")

	// tissueHelperPrefixes are the accepted name prefixes of the tissue
	// events themselves. Some maps spell the anchor with ゥ or use an ASCII
	// abbreviation.
	tissueHelperPrefixes = [][]byte{
		lcf.EncodeShiftJIS("ティッシ"),
		lcf.EncodeShiftJIS("tis"),
	}
)

// TissueEventsConfig is the configuration for the tissue-events rule.
type TissueEventsConfig struct {
	// Expected is the number of tissue events the anchor must reference.
	Expected int `json:"expected" koanf:"expected"`
}

// DefaultTissueEventsConfig returns the default configuration.
func DefaultTissueEventsConfig() TissueEventsConfig {
	return TissueEventsConfig{Expected: 5}
}

// TissueEventsRule cross-checks the tissue anchor event against the events
// it calls or relocates.
type TissueEventsRule struct{}

// NewTissueEventsRule creates a new tissue-events rule instance.
func NewTissueEventsRule() *TissueEventsRule {
	return &TissueEventsRule{}
}

// Metadata returns the rule metadata.
func (r *TissueEventsRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{
		Code:             rules.Yume2kkiRulePrefix + "tissue-events",
		Name:             "Tissue event validity",
		Description:      "The tissue anchor event must reference existing, correctly named tissue events",
		DefaultLevel:     rules.LevelError,
		Category:         "consistency",
		EnabledByDefault: true,
	}
}

// DefaultConfig returns the default configuration for this rule.
func (r *TissueEventsRule) DefaultConfig() any {
	return DefaultTissueEventsConfig()
}

// ValidateConfig validates the configuration.
func (r *TissueEventsRule) ValidateConfig(config any) error {
	if opts, ok := config.(map[string]any); ok {
		if err := configutil.CheckKeys[TissueEventsConfig](opts); err != nil {
			return err
		}
	}
	cfg := configutil.Coerce(config, DefaultTissueEventsConfig())
	if cfg.Expected < 1 {
		return errors.New("expected must be at least 1")
	}
	return nil
}

// Check runs the tissue-events rule.
func (r *TissueEventsRule) Check(input rules.LintInput) []rules.Diagnostic {
	cfg := configutil.Coerce(input.Config, DefaultTissueEventsConfig())
	doc := input.Document

	anchor := findTissueAnchor(doc)
	if anchor == nil {
		return []rules.Diagnostic{rules.Warning(nil, "Does not have tissue events")}
	}

	// The main code is not always on the first page, so every page counts.
	var refs []int
	for pi := range anchor.Pages {
		for _, cmd := range anchor.Pages[pi].Commands {
			switch cmd.Code { //nolint:exhaustive // only references matter
			case lcf.OpCallEvent:
				_, index := cmd.CallTarget()
				refs = append(refs, index)
			case lcf.OpSetEventLocation:
				refs = append(refs, cmd.LocationSource())
			}
		}
	}

	if len(refs) != cfg.Expected {
		return []rules.Diagnostic{rules.Warning(rules.EventLocation(anchor), fmt.Sprintf(
			"Expected %d tissues but found %d. This is likely a bug with this tool.",
			cfg.Expected, len(refs),
		))}
	}

	var diags []rules.Diagnostic
	for i, id := range refs {
		helper := doc.EventByID(id)
		if helper == nil {
			diags = append(diags, rules.Error(rules.EventLocation(anchor),
				fmt.Sprintf("Tissue %d points to non-existent event EV%04d", i+1, id)))
			continue
		}
		if !hasTissuePrefix(helper.Name) {
			diags = append(diags, rules.Error(rules.EventLocation(helper),
				fmt.Sprintf("incorrect event pointed to by tissue %d.", i+1)))
		}
	}
	return diags
}

func findTissueAnchor(doc *lcf.Document) *lcf.Event {
	for i := range doc.Events {
		if bytes.Equal(doc.Events[i].Name, tissueAnchorName) {
			return &doc.Events[i]
		}
	}
	return nil
}

func hasTissuePrefix(name []byte) bool {
	for _, prefix := range tissueHelperPrefixes {
		if bytes.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
