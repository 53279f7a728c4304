package specfile

import (
	"fmt"
	"sort"
	"strings"

	"interpose/internal/diagnostic"
	"interpose/registry"
	"interpose/wrap"
)

// Validate checks the file against the transform registry and the
// target class, with the strict missing-method policy.
func Validate(f *File, reg *Registry, cls *registry.Class) diagnostic.Diagnostics {
	return validate(f, reg, cls, true)
}

func validate(f *File, reg *Registry, cls *registry.Class, errorOnMissing bool) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for i, g := range f.Groups {
		if g.Methods.IsEmpty() {
			diags.AddWarning("empty-group",
				fmt.Sprintf("wrap group %d names no methods", i), "", "")
		}

		if len(g.Args) == 0 && g.Output == "" {
			diags.AddWarning("no-transforms",
				fmt.Sprintf("wrap group %d has no argument or output transforms", i), "", "")
		}

		args := make([]string, 0, len(g.Args))
		for arg := range g.Args {
			args = append(args, arg)
		}

		sort.Strings(args)

		for _, arg := range args {
			if !reg.Has(g.Args[arg]) {
				diags.AddError("unknown-transform",
					fmt.Sprintf("transform %q is not registered (have: %s)",
						g.Args[arg], strings.Join(reg.Names(), ", ")), "", arg)
			}
		}

		if g.Output != "" && !reg.Has(g.Output) {
			diags.AddError("unknown-transform",
				fmt.Sprintf("transform %q is not registered (have: %s)",
					g.Output, strings.Join(reg.Names(), ", ")), "", wrap.OutputKey)
		}

		for _, name := range g.Methods {
			m, ok := cls.Lookup(name)
			if !ok {
				msg := fmt.Sprintf("class %s has no method %q", cls.Name(), name)
				if errorOnMissing {
					diags.AddError("missing-method", msg, name, "")
				} else {
					diags.AddWarning("missing-method", msg+" (skipped)", name, "")
				}

				continue
			}

			sig := m.Signature()

			receiver := ""
			if sig.Len() > 0 {
				receiver = sig.Names()[0]
			}

			for _, arg := range args {
				switch {
				case arg == receiver:
					diags.AddError("receiver-argument",
						fmt.Sprintf("argument %q is the receiver of %q and cannot be transformed",
							arg, name), name, arg)
				case !sig.Has(arg):
					diags.AddError("unknown-argument",
						fmt.Sprintf("method %q declares no argument %q", name, arg), name, arg)
				}
			}
		}
	}

	return diags
}
