package ir

// Externals is an insertion-ordered set of dependency identifiers
// (imports, use declarations) a generated file needs.
// It is owned by a single generation run and is not safe for concurrent use.
type Externals struct {
	items []string
	seen  map[string]struct{}
}

// NewExternals creates an empty registry
func NewExternals() *Externals {
	return &Externals{seen: make(map[string]struct{})}
}

// Add registers a dependency. It returns false when the dependency was already present.
func (e *Externals) Add(dep string) bool {
	if e.seen == nil {
		e.seen = make(map[string]struct{})
	}
	if _, ok := e.seen[dep]; ok {
		return false
	}
	e.seen[dep] = struct{}{}
	e.items = append(e.items, dep)
	return true
}

// Has reports whether dep has been registered
func (e *Externals) Has(dep string) bool {
	_, ok := e.seen[dep]
	return ok
}

// List returns the registered dependencies in first-seen order
func (e *Externals) List() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the number of registered dependencies
func (e *Externals) Len() int {
	return len(e.items)
}
