package rules

import (
	"fmt"
	"sync"
)

// Registry is an ordered set of rules. Registration order is significant:
// it fixes the 1-based index used for suppression and in reports.
type Registry struct {
	mu    sync.RWMutex
	order []Rule
	index map[string]int
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register appends a rule to the registry.
// Panics if a rule with the same code is already registered.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := rule.Metadata().Code
	if _, exists := r.index[code]; exists {
		panic(fmt.Sprintf("rule %q already registered", code))
	}
	r.order = append(r.order, rule)
	r.index[code] = len(r.order)
}

// Get retrieves a rule by its code.
// Returns nil if no rule is found.
func (r *Registry) Get(code string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[code]
	if !ok {
		return nil
	}
	return r.order[i-1]
}

// Has returns true if a rule with the given code is registered.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.index[code]
	return exists
}

// Index returns the 1-based position of the rule with the given code, or 0.
func (r *Registry) Index(code string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index[code]
}

// At returns the rule at 1-based position i, or nil when out of range.
func (r *Registry) At(i int) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 1 || i > len(r.order) {
		return nil
	}
	return r.order[i-1]
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// All returns all registered rules in registration order.
func (r *Registry) All() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, len(r.order))
	copy(result, r.order)
	return result
}

// Codes returns all registered rule codes in registration order.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, len(r.order))
	for i, rule := range r.order {
		codes[i] = rule.Metadata().Code
	}
	return codes
}

// EnabledByDefault returns rules that are enabled by default, in order.
func (r *Registry) EnabledByDefault() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.order))
	for _, rule := range r.order {
		if rule.Metadata().EnabledByDefault {
			result = append(result, rule)
		}
	}
	return result
}

// ByCategory returns rules filtered by category, in order.
func (r *Registry) ByCategory(category string) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0)
	for _, rule := range r.order {
		if rule.Metadata().Category == category {
			result = append(result, rule)
		}
	}
	return result
}

// defaultRegistry is the global default registry.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the global default registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a rule to the default registry.
func Register(rule Rule) {
	defaultRegistry.Register(rule)
}

// Get retrieves a rule from the default registry.
func Get(code string) Rule {
	return defaultRegistry.Get(code)
}

// All returns all rules from the default registry.
func All() []Rule {
	return defaultRegistry.All()
}

// Codes returns all rule codes from the default registry.
func Codes() []string {
	return defaultRegistry.Codes()
}
