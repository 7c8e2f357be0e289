package processor

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// SeverityOverride applies severity overrides from configuration.
// A rule configured with severity "warning" or "error" has every diagnostic
// rewritten to that level.
type SeverityOverride struct{}

// NewSeverityOverride creates a new severity override processor.
func NewSeverityOverride() *SeverityOverride {
	return &SeverityOverride{}
}

// Name returns the processor's identifier.
func (p *SeverityOverride) Name() string {
	return "severity-override"
}

// Process applies severity overrides from config.
func (p *SeverityOverride) Process(results []rules.Result, ctx *Context) []rules.Result {
	if ctx == nil || ctx.Config == nil {
		return results
	}
	return transformResults(results, func(r rules.Result) rules.Result {
		override := ctx.Config.Rules.GetSeverity(r.Rule.Code)
		if override == "" || override == config.SeverityOff {
			return r
		}
		level, err := rules.ParseLevel(override)
		if err != nil {
			// Invalid severity in config - keep original
			return r
		}
		diags := make([]rules.Diagnostic, len(r.Diagnostics))
		for i, d := range r.Diagnostics {
			diags[i] = d.WithLevel(level)
		}
		r.Diagnostics = diags
		return r
	})
}
