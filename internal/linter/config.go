package linter

import (
	"github.com/sirupsen/logrus"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/processor"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// selectRules returns the rules that run under cfg, in registry order.
func selectRules(
	reg *rules.Registry,
	cfg *config.Config,
	suppress processor.Suppression,
	log logrus.FieldLogger,
) []SelectedRule {
	all := reg.All()
	for _, idx := range suppress.Indexes() {
		if idx > len(all) {
			log.WithField("index", idx).Debug("suppressed rule index does not exist")
		}
	}

	selected := make([]SelectedRule, 0, len(all))
	for i, rule := range all {
		index := i + 1
		meta := rule.Metadata()
		entry := log.WithField("rule", meta.Code).WithField("index", index)

		if suppress.Contains(index) {
			entry.Debug("rule suppressed")
			continue
		}
		if !isRuleEnabled(meta, cfg) {
			entry.Debug("rule disabled")
			continue
		}
		selected = append(selected, SelectedRule{
			Index:   index,
			Rule:    rule,
			Options: cfg.Rules.GetOptions(meta.Code),
		})
	}
	return selected
}

// EnabledRuleCodes returns the codes of the rules that are active for cfg,
// in registry order.
func EnabledRuleCodes(cfg *config.Config) []string {
	var codes []string
	for _, rule := range rules.DefaultRegistry().All() {
		if isRuleEnabled(rule.Metadata(), cfg) {
			codes = append(codes, rule.Metadata().Code)
		}
	}
	return codes
}

// isRuleEnabled checks if a rule is effectively enabled based on config.
func isRuleEnabled(meta rules.RuleMetadata, cfg *config.Config) bool {
	if cfg == nil {
		return meta.EnabledByDefault
	}

	// Include/exclude patterns and severity "off".
	if enabled := cfg.Rules.IsEnabled(meta.Code); enabled != nil {
		return *enabled
	}

	// An opt-in rule is enabled by configuring it.
	if !meta.EnabledByDefault {
		ruleConfig := cfg.Rules.Get(meta.Code)
		return ruleConfig != nil && (ruleConfig.Severity != "" || len(ruleConfig.Options) > 0)
	}

	return true
}
