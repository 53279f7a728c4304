package signature

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyArgs  = errors.New("more positional arguments than declared parameters")
	ErrDuplicateArg = errors.New("argument bound both positionally and by name")
	ErrUnknownArg   = errors.New("named argument is not declared in the signature")
)

// Merge unifies one call's positional and named arguments into a
// single ordered name->value mapping so that arguments can be handled
// uniformly regardless of how the call site spelled them.
//
// With no positional arguments the named mapping is returned as-is,
// key order included; signature lookup is skipped entirely. Otherwise
// positionals are bound in declaration order, named arguments are
// overlaid, and declared defaults fill parameters still absent. The
// result iterates in declaration order. Parameters supplied by nobody
// and carrying no default are simply absent: merging unifies, it does
// not validate completeness.
func Merge(sig Signature, positional []any, named *Args) (*Args, error) {
	if len(positional) == 0 {
		if named == nil {
			return NewArgs(), nil
		}

		return named, nil
	}

	bound, err := bindPositional(sig, positional)
	if err != nil {
		return nil, err
	}

	for _, p := range named.Pairs() {
		if !sig.Has(p.Name) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArg, p.Name)
		}

		if _, exists := bound[p.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArg, p.Name)
		}

		bound[p.Name] = p.Value
	}

	merged := NewArgs()

	for _, param := range sig.Params() {
		if v, ok := bound[param.Name]; ok {
			merged.Set(param.Name, v)
			continue
		}

		if param.HasDefault {
			merged.Set(param.Name, param.Default)
		}
	}

	return merged, nil
}

// bindPositional pairs positional values with parameters in
// declaration order. For a variadic signature the last parameter
// collects every remaining positional as a []any.
func bindPositional(sig Signature, positional []any) (map[string]any, error) {
	params := sig.Params()
	bound := make(map[string]any, len(positional))

	if sig.IsVariadic() && len(positional) >= sig.Len() {
		last := params[len(params)-1]

		for i, p := range params[:len(params)-1] {
			bound[p.Name] = positional[i]
		}

		bound[last.Name] = append([]any(nil), positional[sig.Len()-1:]...)

		return bound, nil
	}

	if len(positional) > sig.Len() {
		return nil, fmt.Errorf("%w: %d for %d", ErrTooManyArgs, len(positional), sig.Len())
	}

	for i, v := range positional {
		bound[params[i].Name] = v
	}

	return bound, nil
}
