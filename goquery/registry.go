package goquery

import "github.com/fwojciec/chatdump"

// Registry manages dialect-specific selector sets and auto-detects the
// dialect from snapshot HTML. It uses a DialectDetector to identify the
// client generation and returns the matching SelectorSet, falling back to a
// default set when the dialect is unknown or nothing is registered for it.
type Registry struct {
	detector chatdump.DialectDetector
	fallback SelectorSet
	sets     map[chatdump.Dialect]SelectorSet
}

// NewRegistry creates a new Registry with the given detector and fallback
// selector set. The fallback is used when GetForHTML cannot find a specific
// set for the detected dialect.
func NewRegistry(detector chatdump.DialectDetector, fallback SelectorSet) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		sets:     make(map[chatdump.Dialect]SelectorSet),
	}
}

// Get returns the selector set for a specific dialect.
// The second return value reports whether one was registered.
func (r *Registry) Get(dialect chatdump.Dialect) (SelectorSet, bool) {
	set, ok := r.sets[dialect]
	return set, ok
}

// GetForHTML detects the dialect from HTML and returns the matching selector
// set, falling back to the default when the dialect is unknown or has no
// registered set.
func (r *Registry) GetForHTML(html string) SelectorSet {
	dialect := r.detector.Detect(html)
	if set, ok := r.sets[dialect]; ok {
		return set
	}
	return r.fallback
}

// Register adds a selector set for a dialect.
// If one is already registered for the dialect, it is replaced.
func (r *Registry) Register(dialect chatdump.Dialect, set SelectorSet) {
	r.sets[dialect] = set
}

// List returns all registered dialects.
func (r *Registry) List() []chatdump.Dialect {
	dialects := make([]chatdump.Dialect, 0, len(r.sets))
	for d := range r.sets {
		dialects = append(dialects, d)
	}
	return dialects
}

// DefaultRegistry returns a registry with the modern and legacy selector
// sets registered and the modern set as fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), ModernSelectors())
	r.Register(chatdump.DialectModern, ModernSelectors())
	r.Register(chatdump.DialectLegacy, LegacySelectors())
	return r
}
