package wrap

import (
	"fmt"
	"sort"

	"interpose/callable"
	"interpose/signature"
)

// OutputKey is the reserved spec key naming the return-value
// transform. The double underscore keeps it out of any real
// parameter namespace.
const OutputKey = "__output__"

// Spec maps parameter names to the transforms applied to their bound
// values before the call, plus optionally OutputKey for the return
// value. A Spec is captured at wrap time and shared read-only by
// every invocation of the wrapped callable.
type Spec map[string]Transform

// ArgNames returns the targeted parameter names, OutputKey excluded,
// in sorted order.
func (s Spec) ArgNames() []string {
	names := make([]string, 0, len(s))

	for name := range s {
		if name != OutputKey {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Args builds a wrapper that rewrites the targeted argument values by
// name, regardless of how the call site spelled them, and re-invokes
// the callable in fully keyworded form. The OutputKey entry, if any,
// composes as a post-transform after the underlying call.
//
// An empty spec yields the identity wrapper. A call that leaves a
// targeted parameter unbound fails with a binding error before the
// underlying callable runs. Declared defaults reach targeted
// parameters only when the call binds positionally: a fully keyworded
// call passes its mapping through unmerged, so every targeted
// parameter must be spelled at the call site.
func Args(spec Spec) Wrapper {
	return func(c *callable.Callable) *callable.Callable {
		names := spec.ArgNames()
		output := spec[OutputKey]

		if len(names) == 0 {
			return Wrap(c, nil, output)
		}

		inner := callable.New(c.Name(), c.Doc(), c.Signature(), func(pos []any, named *signature.Args) (any, error) {
			merged, err := signature.Merge(c.Signature(), pos, named)
			if err != nil {
				return nil, err
			}

			// The fast path hands back the caller's own mapping.
			merged = merged.Clone()

			for _, name := range names {
				v, ok := merged.Get(name)
				if !ok {
					return nil, fmt.Errorf("%w: %s", callable.ErrUnboundParam, name)
				}

				nv, err := spec[name](v)
				if err != nil {
					return nil, err
				}

				merged.Set(name, nv)
			}

			return c.Keyword(merged)
		})

		return Wrap(inner, nil, output)
	}
}
