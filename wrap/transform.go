package wrap

import (
	"errors"
	"reflect"
)

var ErrBadTransform = errors.New("transform must be func(T) U or func(T) (U, error)")

// Transform rewrites a single value: an argument before the call, or
// the return value after it.
type Transform func(any) (any, error)

// Adapt lifts an ordinary one-argument function into a Transform.
//
// Supported shapes:
//   - func(src T) (dst U)
//   - func(src T) (dst U, error)
func Adapt(fn any) (Transform, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, ErrBadTransform
	}

	t := v.Type()
	if t.NumIn() != 1 || t.IsVariadic() {
		return nil, ErrBadTransform
	}

	switch t.NumOut() {
	default:
		return nil, ErrBadTransform

	case 1:
		if isError(t.Out(0)) {
			return nil, ErrBadTransform
		}

		return func(x any) (any, error) {
			out := v.Call([]reflect.Value{conformArg(x, t.In(0))})
			return out[0].Interface(), nil
		}, nil

	case 2:
		if isError(t.Out(0)) || !isError(t.Out(1)) {
			return nil, ErrBadTransform
		}

		return func(x any) (any, error) {
			out := v.Call([]reflect.Value{conformArg(x, t.In(0))})
			if !out[1].IsNil() {
				return nil, out[1].Interface().(error)
			}

			return out[0].Interface(), nil
		}, nil
	}
}

func conformArg(x any, want reflect.Type) reflect.Value {
	if x == nil {
		return reflect.Zero(want)
	}

	rv := reflect.ValueOf(x)
	if !rv.Type().AssignableTo(want) && rv.Type().ConvertibleTo(want) {
		return rv.Convert(want)
	}

	return rv
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	terr := reflect.TypeOf((*error)(nil)).Elem()

	return t.Implements(terr)
}
