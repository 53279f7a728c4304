package registry

import "interpose/wrap"

// SpecGroup assigns one per-argument transform specification to a set
// of method names, so several methods sharing identical transforms can
// be authored once.
type SpecGroup struct {
	Methods []string
	Spec    wrap.Spec
}

// ExpandGroups flattens groups into one specification per method.
// When a method appears in more than one group, later groups merge
// into earlier ones entry by entry, with later entries overriding.
func ExpandGroups(groups []SpecGroup) map[string]wrap.Spec {
	out := make(map[string]wrap.Spec)

	for _, g := range groups {
		for _, name := range g.Methods {
			spec, ok := out[name]
			if !ok {
				spec = make(wrap.Spec, len(g.Spec))
				out[name] = spec
			}

			for arg, fn := range g.Spec {
				spec[arg] = fn
			}
		}
	}

	return out
}
