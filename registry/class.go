package registry

import (
	"errors"
	"fmt"

	"interpose/callable"
	"interpose/signature"
)

var (
	ErrMissingMethod = errors.New("class has no such method")
	ErrNoReceiver    = errors.New("unbound method must declare a receiver parameter")
)

// Class is an ordered registry of unbound methods with an optional
// base class. Methods are callables whose first declared parameter is
// the receiver; the receiver stays an ordinary parameter until Bind
// fixes it to a concrete value.
type Class struct {
	name    string
	base    *Class
	methods map[string]*callable.Callable
	order   []string
}

// NewClass creates an empty class deriving from base. A nil base makes
// a root class.
func NewClass(name string, base *Class) *Class {
	return &Class{
		name:    name,
		base:    base,
		methods: make(map[string]*callable.Callable),
	}
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Base returns the class this one derives from, or nil for a root class.
func (c *Class) Base() *Class { return c.base }

// Define registers fn as an unbound method. The first declared
// parameter name is the receiver; at least one name is therefore
// required.
func (c *Class) Define(name string, fn any, names ...string) (*callable.Callable, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoReceiver, c.name, name)
	}

	m, err := callable.Func(fn, names...)
	if err != nil {
		return nil, err
	}

	m = m.Named(name)
	c.DefineCallable(m)

	return m, nil
}

// DefineCallable registers a prebuilt callable under its own name,
// replacing any method of that name already declared on this class.
// Methods inherited from a base are shadowed, not replaced.
func (c *Class) DefineCallable(m *callable.Callable) {
	if _, ok := c.methods[m.Name()]; !ok {
		c.order = append(c.order, m.Name())
	}

	c.methods[m.Name()] = m
}

// Lookup resolves a method by name, walking the base chain when this
// class does not declare it.
func (c *Class) Lookup(name string) (*callable.Callable, bool) {
	for cls := c; cls != nil; cls = cls.base {
		if m, ok := cls.methods[name]; ok {
			return m, true
		}
	}

	return nil, false
}

// Has reports whether the class or any of its bases declares name.
func (c *Class) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// MethodNames lists the methods declared directly on this class, in
// declaration order. Inherited methods are not included.
func (c *Class) MethodNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Bind resolves a method and fixes its receiver, producing a bound
// callable whose declared parameters no longer include the receiver.
func (c *Class) Bind(name string, recv any) (*callable.Callable, error) {
	m, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingMethod, c.name, name)
	}

	return callable.New(m.Name(), m.Doc(), m.Signature().Tail(),
		func(pos []any, named *signature.Args) (any, error) {
			return m.Call(append([]any{recv}, pos...), named)
		}), nil
}

// derive makes a shallow copy of the class under a new name, sharing
// the base but owning an independent method table.
func (c *Class) derive(name string) *Class {
	out := NewClass(name, c.base)

	for _, n := range c.order {
		out.DefineCallable(c.methods[n])
	}

	return out
}
