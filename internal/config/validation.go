package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Levels are the accepted severity floor names.
var Levels = []string{"all", "warn", "error"}

var severities = []string{SeverityOff, "warning", "error"}

func decodeConfig(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that do not depend on the rule registry.
func (c *Config) Validate() error {
	var errs []error

	c.Level = strings.ToLower(c.Level)
	if !slices.Contains(Levels, c.Level) {
		errs = append(errs, fmt.Errorf("level: unknown level %q (valid: %s)", c.Level, strings.Join(Levels, ", ")))
	}
	for _, idx := range c.Suppress {
		if idx < 1 {
			errs = append(errs, fmt.Errorf("suppress: rule index %d must be at least 1", idx))
		}
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs: %d must not be negative", c.Jobs))
	}
	if _, err := lcf.ParseCodePage(c.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("encoding: %w", err))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	for _, code := range c.Rules.Codes() {
		sev := c.Rules.GetSeverity(code)
		if sev != "" && !slices.Contains(severities, sev) {
			errs = append(errs, fmt.Errorf("rules.%s.severity: unknown severity %q (valid: %s)",
				strings.Replace(code, "/", ".", 1), sev, strings.Join(severities, ", ")))
		}
	}

	return errors.Join(errs...)
}

// ValidateRules checks rule sections and selection patterns against the
// registry and validates the options of configurable rules.
func (c *Config) ValidateRules(reg *rules.Registry) error {
	var errs []error

	codes := c.Rules.Codes()
	slices.Sort(codes)
	for _, code := range codes {
		rule := reg.Get(code)
		if rule == nil {
			errs = append(errs, fmt.Errorf("rules: unknown rule %q", code))
			continue
		}
		opts := c.Rules.GetOptions(code)
		cr, ok := rule.(rules.ConfigurableRule)
		if !ok {
			if len(opts) > 0 {
				errs = append(errs, fmt.Errorf("rules: %s takes no options", code))
			}
			continue
		}
		if len(opts) == 0 {
			continue
		}
		if err := cr.ValidateConfig(opts); err != nil {
			errs = append(errs, fmt.Errorf("rules: %s: %w", code, err))
		}
	}

	for _, pattern := range slices.Concat(c.Rules.Include, c.Rules.Exclude) {
		if !patternMatchesAny(pattern, reg.Codes()) {
			errs = append(errs, fmt.Errorf("rules: pattern %q matches no rule", pattern))
		}
	}

	return errors.Join(errs...)
}

func patternMatchesAny(pattern string, codes []string) bool {
	for _, code := range codes {
		if matchesPattern(code, pattern) {
			return true
		}
	}
	return false
}
