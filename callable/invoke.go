package callable

import (
	"fmt"
	"reflect"

	"interpose/signature"
)

type resultShape struct {
	hasValue bool
	hasErr   bool
}

// resultShapeOf classifies a function's results. Supported shapes:
// (), (T), (error), (T, error). Anything else cannot be folded into
// the single-value call model.
func resultShapeOf(t reflect.Type) (resultShape, error) {
	switch t.NumOut() {
	default:
		return resultShape{}, ErrBadShape

	case 0:
		return resultShape{}, nil

	case 1:
		if isError(t.Out(0)) {
			return resultShape{hasErr: true}, nil
		}

		return resultShape{hasValue: true}, nil

	case 2:
		if isError(t.Out(0)) || !isError(t.Out(1)) {
			return resultShape{}, ErrBadShape
		}

		return resultShape{hasValue: true, hasErr: true}, nil
	}
}

func (s resultShape) split(out []reflect.Value) (any, error) {
	if s.hasErr {
		last := out[len(out)-1]
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
	}

	if s.hasValue {
		return out[0].Interface(), nil
	}

	return nil, nil
}

// buildInputs realizes the declared parameter list from a keyworded
// mapping, applying declared defaults for absent parameters. A missing
// parameter without a default is a binding error, and so is a name the
// signature does not declare: a typo'd argument must not silently run
// with a default.
func buildInputs(t reflect.Type, sig signature.Signature, args *signature.Args) ([]reflect.Value, error) {
	for _, name := range args.Names() {
		if !sig.Has(name) {
			return nil, fmt.Errorf("%w: %s", signature.ErrUnknownArg, name)
		}
	}

	params := sig.Params()
	in := make([]reflect.Value, 0, len(params))

	for i, p := range params {
		v, ok := args.Get(p.Name)
		if !ok && p.HasDefault {
			v, ok = p.Default, true
		}

		if t.IsVariadic() && i == len(params)-1 {
			if !ok {
				return in, nil
			}

			return appendVariadic(in, v, t.In(i).Elem(), p.Name)
		}

		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnboundParam, p.Name)
		}

		cv, err := conform(v, t.In(i), p.Name)
		if err != nil {
			return nil, err
		}

		in = append(in, cv)
	}

	return in, nil
}

// appendVariadic expands the bound slice value into individual
// trailing inputs.
func appendVariadic(in []reflect.Value, v any, elem reflect.Type, name string) ([]reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("%w: %s: variadic parameter needs a slice, got %T", ErrArgType, name, v)
	}

	for i := 0; i < rv.Len(); i++ {
		cv, err := conform(rv.Index(i).Interface(), elem, name)
		if err != nil {
			return nil, err
		}

		in = append(in, cv)
	}

	return in, nil
}

// conform fits a bound value to the declared input type. A nil value
// becomes the type's zero value; convertible values are converted.
func conform(v any, want reflect.Type, name string) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(want), nil
	}

	rv := reflect.ValueOf(v)

	if rv.Type().AssignableTo(want) {
		return rv, nil
	}

	if rv.Type().ConvertibleTo(want) {
		return rv.Convert(want), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: %s: %T is not assignable to %s", ErrArgType, name, v, want)
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
