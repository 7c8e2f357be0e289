package processor

import (
	"fmt"
	"strings"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Floor is the minimum severity a report entry needs to be shown.
type Floor int

const (
	// FloorAll shows every rule, clean ones included.
	FloorAll Floor = iota
	// FloorWarn shows rules with at least one diagnostic.
	FloorWarn
	// FloorError shows only error diagnostics.
	FloorError
)

// String returns the floor name accepted by ParseFloor.
func (f Floor) String() string {
	switch f {
	case FloorAll:
		return "all"
	case FloorWarn:
		return "warn"
	case FloorError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseFloor parses a floor name.
func ParseFloor(s string) (Floor, error) {
	switch strings.ToLower(s) {
	case "all", "":
		return FloorAll, nil
	case "warn", "warning":
		return FloorWarn, nil
	case "error":
		return FloorError, nil
	default:
		return FloorAll, fmt.Errorf("unknown level: %q (valid: all, warn, error)", s)
	}
}

// LevelFloor drops report entries below the severity floor.
type LevelFloor struct {
	floor Floor
}

// NewLevelFloor creates a floor filter.
func NewLevelFloor(floor Floor) *LevelFloor {
	return &LevelFloor{floor: floor}
}

// Name returns the processor's identifier.
func (p *LevelFloor) Name() string {
	return "level-floor"
}

// Process applies the floor. FloorAll keeps everything, FloorWarn drops clean
// results, and FloorError also drops warnings and any result left empty.
func (p *LevelFloor) Process(results []rules.Result, _ *Context) []rules.Result {
	switch p.floor {
	case FloorAll:
		return results
	case FloorWarn:
		return filterResults(results, func(r rules.Result) bool {
			return !r.Clean()
		})
	case FloorError:
		errorsOnly := transformResults(results, func(r rules.Result) rules.Result {
			r.Diagnostics = filterDiagnostics(r.Diagnostics, func(d rules.Diagnostic) bool {
				return d.Level.IsAtLeast(rules.LevelError)
			})
			return r
		})
		return filterResults(errorsOnly, func(r rules.Result) bool {
			return !r.Clean()
		})
	default:
		return results
	}
}
