package processor

import (
	"cmp"
	"slices"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Sorting ensures results are in registry order.
type Sorting struct{}

// NewSorting creates a new sorting processor.
func NewSorting() *Sorting {
	return &Sorting{}
}

// Name returns the processor's identifier.
func (p *Sorting) Name() string {
	return "sorting"
}

// Process stable-sorts results by rule index.
func (p *Sorting) Process(results []rules.Result, _ *Context) []rules.Result {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b rules.Result) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return out
}
