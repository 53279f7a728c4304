package wrap

import (
	"interpose/callable"
	"interpose/signature"
)

// Pre rewrites a call's raw positional and named arguments before the
// underlying callable runs.
type Pre func(pos []any, named *signature.Args) ([]any, *signature.Args, error)

// Wrapper turns one callable into its wrapped form. Wrappers from
// this package and from application code compose by plain function
// application.
type Wrapper func(*callable.Callable) *callable.Callable

// Wrap layers an optional pre-transform and an optional post-transform
// around a callable. With neither present the callable is returned
// unchanged, so an unconfigured wrap costs nothing per call.
func Wrap(c *callable.Callable, pre Pre, post Transform) *callable.Callable {
	if pre == nil && post == nil {
		return c
	}

	return callable.New(c.Name(), c.Doc(), c.Signature(), func(pos []any, named *signature.Args) (any, error) {
		if pre != nil {
			var err error

			pos, named, err = pre(pos, named)
			if err != nil {
				return nil, err
			}
		}

		out, err := c.Call(pos, named)
		if err != nil {
			return nil, err
		}

		if post != nil {
			return post(out)
		}

		return out, nil
	})
}
