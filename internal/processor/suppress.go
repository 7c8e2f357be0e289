package processor

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Suppression is a set of 1-based rule indexes that must not run.
type Suppression map[int]struct{}

// NewSuppression builds a suppression set from rule indexes.
func NewSuppression(indexes ...int) Suppression {
	s := make(Suppression, len(indexes))
	for _, i := range indexes {
		s[i] = struct{}{}
	}
	return s
}

// ParseSuppress parses a comma-separated list of rule indexes such as "1,3".
// Empty entries are ignored; anything else that is not a positive integer
// is an error.
func ParseSuppress(s string) (Suppression, error) {
	set := make(Suppression)
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid rule index %q", part)
		}
		if i < 1 {
			return nil, fmt.Errorf("invalid rule index %d: indexes start at 1", i)
		}
		set[i] = struct{}{}
	}
	return set, nil
}

// Contains reports whether the rule at index i is suppressed.
func (s Suppression) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Indexes returns the suppressed indexes in ascending order.
func (s Suppression) Indexes() []int {
	return slices.Sorted(maps.Keys(s))
}
