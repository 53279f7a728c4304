package signature

// Args is an ordered mapping from parameter name to bound value.
// Insertion order is preserved; setting an existing name updates the
// value in place without reordering. One Args instance describes one
// call and is never mutated by the framework after being handed to a
// callable.
type Args struct {
	names  []string
	values map[string]any
}

// Pair is a single name/value entry of an Args mapping.
type Pair struct {
	Name  string
	Value any
}

// NewArgs returns an empty argument mapping.
func NewArgs() *Args {
	return &Args{values: make(map[string]any)}
}

// Set binds a value to a name, preserving first-insertion order.
// It returns the mapping for chaining.
func (a *Args) Set(name string, value any) *Args {
	if a.values == nil {
		a.values = make(map[string]any)
	}

	if _, exists := a.values[name]; !exists {
		a.names = append(a.names, name)
	}

	a.values[name] = value

	return a
}

// Get returns the value bound to name.
func (a *Args) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}

	v, ok := a.values[name]

	return v, ok
}

// Has reports whether name is bound.
func (a *Args) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Len returns the number of bound names.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}

	return len(a.names)
}

// Names returns the bound names in insertion order.
func (a *Args) Names() []string {
	if a == nil {
		return nil
	}

	return append([]string(nil), a.names...)
}

// Pairs returns the entries in insertion order.
func (a *Args) Pairs() []Pair {
	if a == nil {
		return nil
	}

	pairs := make([]Pair, 0, len(a.names))
	for _, name := range a.names {
		pairs = append(pairs, Pair{Name: name, Value: a.values[name]})
	}

	return pairs
}

// Clone returns an independent copy with the same order and values.
func (a *Args) Clone() *Args {
	out := NewArgs()
	if a == nil {
		return out
	}

	for _, name := range a.names {
		out.Set(name, a.values[name])
	}

	return out
}
