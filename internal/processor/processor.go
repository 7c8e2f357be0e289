// Package processor provides a composable result processing pipeline.
//
// The processor chain pattern is inspired by golangci-lint's approach:
// results flow through a sequence of processors, each transforming
// the slice (filtering or modifying).
//
// Standard pipeline order:
//  1. SeverityOverride - Apply config severity overrides
//  2. Sorting - Registry order by rule index
//  3. LevelFloor - Drop entries below the severity floor
package processor

import (
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Processor transforms the results of one map.
// Implementations should be stateless where possible, using Context for shared state.
type Processor interface {
	// Name returns the processor's identifier (for debugging/logging).
	Name() string

	// Process applies the processor's logic to results.
	// Returns the transformed slice (may be same, filtered, or modified).
	// Must not modify the input slice or the diagnostics it holds; return
	// new slices instead.
	Process(results []rules.Result, ctx *Context) []rules.Result
}

// Context provides shared state for processors.
type Context struct {
	// Config is the loaded configuration. May be nil.
	Config *config.Config
}

// NewContext creates a new processor context.
func NewContext(cfg *config.Config) *Context {
	return &Context{Config: cfg}
}

// Chain runs processors in sequence.
type Chain struct {
	processors []Processor
}

// NewChain creates a new processor chain.
func NewChain(processors ...Processor) *Chain {
	return &Chain{processors: processors}
}

// Process runs all processors in sequence.
func (c *Chain) Process(results []rules.Result, ctx *Context) []rules.Result {
	for _, p := range c.processors {
		results = p.Process(results, ctx)
	}
	return results
}

// Names returns the processor names in execution order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.processors))
	for i, p := range c.processors {
		names[i] = p.Name()
	}
	return names
}

// filterResults is a helper for processors that filter results.
// It returns a new slice containing only results where keep() returns true.
func filterResults(results []rules.Result, keep func(r rules.Result) bool) []rules.Result {
	out := make([]rules.Result, 0, len(results))
	for _, r := range results {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// transformResults is a helper for processors that modify results.
// It returns a new slice with each result transformed by transform().
func transformResults(results []rules.Result, transform func(r rules.Result) rules.Result) []rules.Result {
	out := make([]rules.Result, len(results))
	for i, r := range results {
		out[i] = transform(r)
	}
	return out
}

// filterDiagnostics returns a new slice with the diagnostics keep() accepts.
func filterDiagnostics(diags []rules.Diagnostic, keep func(d rules.Diagnostic) bool) []rules.Diagnostic {
	out := make([]rules.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
