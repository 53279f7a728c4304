package specfile

import (
	"errors"
	"fmt"
	"sort"

	"interpose/registry"
	"interpose/wrap"
)

var ErrUnknownTransform = errors.New("spec references a transform the registry does not hold")

// Build resolves every transform name in the file against reg and
// expands the groups into one specification per method.
func Build(f *File, reg *Registry) (map[string]wrap.Spec, error) {
	groups := make([]registry.SpecGroup, 0, len(f.Groups))

	for _, g := range f.Groups {
		spec := make(wrap.Spec, len(g.Args)+1)

		args := make([]string, 0, len(g.Args))
		for arg := range g.Args {
			args = append(args, arg)
		}

		sort.Strings(args)

		for _, arg := range args {
			t, ok := reg.Get(g.Args[arg])
			if !ok {
				return nil, fmt.Errorf("%w: %q for argument %q", ErrUnknownTransform, g.Args[arg], arg)
			}

			spec[arg] = t
		}

		if g.Output != "" {
			t, ok := reg.Get(g.Output)
			if !ok {
				return nil, fmt.Errorf("%w: %q for output", ErrUnknownTransform, g.Output)
			}

			spec[wrap.OutputKey] = t
		}

		groups = append(groups, registry.SpecGroup{
			Methods: g.Methods,
			Spec:    spec,
		})
	}

	return registry.ExpandGroups(groups), nil
}

// Apply validates the file against cls and reg, builds the per-method
// specifications, and performs the batch wrap. errorOnMissing controls
// both validation strictness and the batch's missing-method policy.
func Apply(f *File, reg *Registry, cls *registry.Class, strategy registry.CopyStrategy, errorOnMissing bool) (*registry.Class, error) {
	diags := validate(f, reg, cls, errorOnMissing)
	if diags.HasErrors() {
		return nil, diags.Error()
	}

	specs, err := Build(f, reg)
	if err != nil {
		return nil, err
	}

	return registry.WrapSpecs(cls, strategy, errorOnMissing, specs)
}
