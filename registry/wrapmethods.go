package registry

import (
	"sort"

	"interpose/wrap"
)

// WrapMethods replaces a named subset of methods with wrapped forms.
//
// With errorOnMissing set, every named method must resolve on the
// class before anything is replaced; a missing one fails the whole
// batch up front and leaves the class untouched. With it unset,
// missing names are skipped silently.
//
// The Independent strategy applies replacements to a derived copy
// named "_"+class name and returns it; InPlace mutates and returns the
// given class.
func WrapMethods(cls *Class, strategy CopyStrategy, errorOnMissing bool, wrappers map[string]wrap.Wrapper) (*Class, error) {
	names := make([]string, 0, len(wrappers))
	for name := range wrappers {
		names = append(names, name)
	}

	sort.Strings(names)

	if errorOnMissing {
		if err := RequireMethods(cls, names...); err != nil {
			return nil, err
		}
	}

	target := cls
	if strategy == Independent {
		target = cls.derive("_" + cls.name)
	}

	for _, name := range names {
		m, ok := cls.Lookup(name)
		if !ok {
			continue
		}

		target.DefineCallable(wrappers[name](m))
	}

	return target, nil
}

// WrapSpecs is WrapMethods with each method's wrapper built from a
// per-argument transform specification.
func WrapSpecs(cls *Class, strategy CopyStrategy, errorOnMissing bool, specs map[string]wrap.Spec) (*Class, error) {
	wrappers := make(map[string]wrap.Wrapper, len(specs))
	for name, spec := range specs {
		wrappers[name] = wrap.Args(spec)
	}

	return WrapMethods(cls, strategy, errorOnMissing, wrappers)
}
