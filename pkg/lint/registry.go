package lint

import (
	"sort"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = NewRegistry()

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]RuleDef)}
}

// Register adds a rule to the global registry.
// Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.Register(rule)
}

// Register adds a rule, replacing any rule with the same ID.
func (r *Registry) Register(rule RuleDef) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID] = rule
}

// All returns the registered rules sorted by ID.
func (r *Registry) All() []RuleDef {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]RuleDef, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })
	return rules
}

// ByID returns a rule by its ID.
func (r *Registry) ByID(id string) (RuleDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	return rule, ok
}

// ByGroup returns the rules of a group sorted by ID.
func (r *Registry) ByGroup(group string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.All() {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// ByLanguage returns the rules applicable to a language, sorted by ID.
// Rules with an empty Languages field apply to every language.
func (r *Registry) ByLanguage(language string) []RuleDef {
	var rules []RuleDef
	for _, rule := range r.All() {
		if rule.AppliesTo(language) {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []RuleDef { return globalRegistry.All() }

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) { return globalRegistry.ByID(id) }

// GetByGroup returns all rules in a specific group.
func GetByGroup(group string) []RuleDef { return globalRegistry.ByGroup(group) }

// GetByLanguage returns rules applicable to a specific language.
func GetByLanguage(language string) []RuleDef { return globalRegistry.ByLanguage(language) }

// Count returns the number of registered rules.
func Count() int { return globalRegistry.Count() }
