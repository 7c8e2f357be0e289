package linter

import "github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/processor"

// Processors returns the standard processor chain for a severity floor.
func Processors(floor processor.Floor) *processor.Chain {
	return processor.NewChain(
		processor.NewSeverityOverride(), // Apply severity overrides (must run before the floor)
		processor.NewSorting(),          // Registry order
		processor.NewLevelFloor(floor),  // Drop entries below the floor
	)
}
