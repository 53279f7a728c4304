package signature

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotAFunction   = errors.New("provided value is not a function")
	ErrParamCount     = errors.New("declared parameter names do not match the function arity")
	ErrDuplicateParam = errors.New("duplicate parameter name")
	ErrEmptyParamName = errors.New("empty parameter name")
	ErrUnknownParam   = errors.New("parameter is not declared in the signature")
)

// Param is a single declared parameter of a callable.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Signature is an ordered parameter list with by-name lookup.
// It is immutable once constructed; derived signatures are copies.
type Signature struct {
	params   []Param
	index    map[string]int
	variadic bool
}

// New builds a signature from an explicit parameter list.
// Names must be unique and non-empty.
func New(params ...Param) (Signature, error) {
	index := make(map[string]int, len(params))

	for i, p := range params {
		if p.Name == "" {
			return Signature{}, ErrEmptyParamName
		}

		if _, exists := index[p.Name]; exists {
			return Signature{}, fmt.Errorf("%w: %s", ErrDuplicateParam, p.Name)
		}

		index[p.Name] = i
	}

	return Signature{params: append([]Param(nil), params...), index: index}, nil
}

// ForFunc builds a signature for fn by pairing the caller-supplied
// parameter names with the function's reflected inputs. Go erases
// parameter names at runtime, so the declared-name table is the
// caller's responsibility; arity is validated here.
//
// For a variadic function the last name binds the variadic slice.
func ForFunc(fn any, names ...string) (Signature, error) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return Signature{}, ErrNotAFunction
	}

	return ForType(t, names...)
}

// ForType is ForFunc over an already reflected function type.
func ForType(t reflect.Type, names ...string) (Signature, error) {
	if t == nil || t.Kind() != reflect.Func {
		return Signature{}, ErrNotAFunction
	}

	if len(names) != t.NumIn() {
		return Signature{}, fmt.Errorf("%w: %d names for %d inputs", ErrParamCount, len(names), t.NumIn())
	}

	params := make([]Param, len(names))
	for i, name := range names {
		params[i] = Param{Name: name}
	}

	sig, err := New(params...)
	if err != nil {
		return Signature{}, err
	}

	sig.variadic = t.IsVariadic()

	return sig, nil
}

// WithDefault returns a copy of the signature whose named parameter
// carries a declared default value.
func (s Signature) WithDefault(name string, value any) (Signature, error) {
	i, ok := s.index[name]
	if !ok {
		return Signature{}, fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}

	params := append([]Param(nil), s.params...)
	params[i].Default = value
	params[i].HasDefault = true

	out, err := New(params...)
	if err != nil {
		return Signature{}, err
	}

	out.variadic = s.variadic

	return out, nil
}

// Tail returns a copy of the signature without its first parameter.
// Used when a receiver-first method is bound to a concrete receiver.
func (s Signature) Tail() Signature {
	if len(s.params) == 0 {
		return s
	}

	out, _ := New(s.params[1:]...)
	out.variadic = s.variadic

	return out
}

// Len returns the number of declared parameters.
func (s Signature) Len() int { return len(s.params) }

// IsVariadic reports whether the last parameter binds a variadic slice.
func (s Signature) IsVariadic() bool { return s.variadic }

// Params returns a copy of the ordered parameter list.
func (s Signature) Params() []Param {
	return append([]Param(nil), s.params...)
}

// Names returns the parameter names in declaration order.
func (s Signature) Names() []string {
	names := make([]string, len(s.params))
	for i, p := range s.params {
		names[i] = p.Name
	}

	return names
}

// Param returns the declared parameter with the given name.
func (s Signature) Param(name string) (Param, bool) {
	i, ok := s.index[name]
	if !ok {
		return Param{}, false
	}

	return s.params[i], true
}

// Has reports whether the signature declares the named parameter.
func (s Signature) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}
