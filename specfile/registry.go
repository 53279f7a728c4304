package specfile

import (
	"fmt"
	"sort"

	"interpose/wrap"
)

// Registry holds named transform functions referenced by spec files.
type Registry struct {
	transforms map[string]wrap.Transform
}

// NewRegistry creates a new empty transform registry.
func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]wrap.Transform),
	}
}

// Register adapts fn into a transform and stores it under name.
// fn must have the shape func(T) U or func(T) (U, error).
func (r *Registry) Register(name string, fn any) error {
	t, err := wrap.Adapt(fn)
	if err != nil {
		return fmt.Errorf("transform %q: %w", name, err)
	}

	r.transforms[name] = t

	return nil
}

// RegisterTransform stores an already-adapted transform under name.
func (r *Registry) RegisterTransform(name string, t wrap.Transform) {
	r.transforms[name] = t
}

// Get returns the transform registered under name.
func (r *Registry) Get(name string) (wrap.Transform, bool) {
	t, ok := r.transforms[name]
	return t, ok
}

// Has returns true if a transform with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.transforms[name]
	return ok
}

// Names returns all registered transform names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
