package callable

import (
	"errors"
	"fmt"
	"reflect"

	"interpose/signature"
)

var (
	ErrNotAFunction = errors.New("provided callable is not a function")
	ErrBadShape     = errors.New("callable must return nothing, a value, an error, or a value and an error")
	ErrNoSuchMethod = errors.New("receiver has no such method")
	ErrUnboundParam = errors.New("required parameter is missing from the call")
	ErrArgType      = errors.New("argument value does not fit the declared parameter type")
)

// CallFunc executes one call given its raw positional and named
// arguments, and returns the call's single value result.
type CallFunc func(pos []any, named *signature.Args) (any, error)

// Callable is a value paired with an ordered parameter list and an
// invocation operation. It models free functions, bound methods and
// receiver-first unbound methods uniformly, so the wrapping layers
// never need to care which one they hold.
//
// A callable is either reflect-backed (built by Func or Bound) or
// composed (built by New from an explicit CallFunc, the way the
// wrapping layers produce their artifacts).
type Callable struct {
	name  string
	pkg   string
	doc   string
	sig   signature.Signature
	fn    reflect.Value
	shape resultShape
	call  CallFunc // non-nil for composed callables
}

// New builds a composed callable from an explicit invocation function.
// The wrapping layers use this to produce callables that share the
// original's name, doc and signature.
func New(name, doc string, sig signature.Signature, call CallFunc) *Callable {
	return &Callable{name: name, doc: doc, sig: sig, call: call}
}

// Func builds a callable from a free function and its declared
// parameter names. The function's name and package alias are
// recovered from its program counter.
func Func(fn any, names ...string) (*Callable, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	sig, err := signature.ForType(v.Type(), names...)
	if err != nil {
		return nil, err
	}

	shape, err := resultShapeOf(v.Type())
	if err != nil {
		return nil, err
	}

	pkg, name := funcName(v)

	return &Callable{name: name, pkg: pkg, sig: sig, fn: v, shape: shape}, nil
}

// Bound builds a callable from a method of a concrete receiver.
// The receiver is embedded in the method value and is not part of the
// declared parameter set.
func Bound(recv any, method string, names ...string) (*Callable, error) {
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil receiver", ErrNoSuchMethod)
	}

	m := rv.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %T.%s", ErrNoSuchMethod, recv, method)
	}

	sig, err := signature.ForType(m.Type(), names...)
	if err != nil {
		return nil, err
	}

	shape, err := resultShapeOf(m.Type())
	if err != nil {
		return nil, err
	}

	return &Callable{name: method, pkg: rv.Type().String(), sig: sig, fn: m, shape: shape}, nil
}

// Name returns the callable's externally visible name.
func (c *Callable) Name() string { return c.name }

// Pkg returns the package alias (or receiver type) the callable came from.
func (c *Callable) Pkg() string { return c.pkg }

// Doc returns the callable's documentation string.
func (c *Callable) Doc() string { return c.doc }

// Signature returns the callable's declared parameter list.
func (c *Callable) Signature() signature.Signature { return c.sig }

// WithDoc attaches a documentation string at construction time and
// returns the callable for chaining.
func (c *Callable) WithDoc(doc string) *Callable {
	c.doc = doc
	return c
}

// Named returns a copy of the callable under a different name.
func (c *Callable) Named(name string) *Callable {
	out := *c
	out.name = name

	return &out
}

// WithDefault returns a copy of the callable whose named parameter
// carries a declared default, applied whenever a call omits it.
func (c *Callable) WithDefault(name string, value any) (*Callable, error) {
	sig, err := c.sig.WithDefault(name, value)
	if err != nil {
		return nil, err
	}

	out := *c
	out.sig = sig

	if c.call != nil {
		inner := c.call
		out.call = func(pos []any, named *signature.Args) (any, error) {
			merged, err := signature.Merge(sig, pos, named)
			if err != nil {
				return nil, err
			}

			return inner(nil, fillDefaults(sig, merged))
		}
	}

	return &out, nil
}

// fillDefaults adds declared defaults for absent parameters. The
// merge fast path hands back the caller's mapping untouched, so a
// copy is taken before anything is added.
func fillDefaults(sig signature.Signature, args *signature.Args) *signature.Args {
	filled := args

	for _, p := range sig.Params() {
		if p.HasDefault && !args.Has(p.Name) {
			if filled == args {
				filled = args.Clone()
			}

			filled.Set(p.Name, p.Default)
		}
	}

	return filled
}

// Call invokes the callable with a raw positional/named split.
func (c *Callable) Call(pos []any, named *signature.Args) (any, error) {
	if c.call != nil {
		return c.call(pos, named)
	}

	merged, err := signature.Merge(c.sig, pos, named)
	if err != nil {
		return nil, err
	}

	in, err := buildInputs(c.fn.Type(), c.sig, merged)
	if err != nil {
		return nil, err
	}

	return c.shape.split(c.fn.Call(in))
}

// Invoke is a positional-only convenience over Call.
func (c *Callable) Invoke(pos ...any) (any, error) {
	return c.Call(pos, nil)
}

// Keyword invokes the callable with a fully keyworded argument
// mapping, skipping positional binding entirely.
func (c *Callable) Keyword(args *signature.Args) (any, error) {
	return c.Call(nil, args)
}
