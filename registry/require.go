package registry

import (
	"fmt"
	"strings"
)

// RequireMethods reports every named method the class cannot resolve,
// aggregated into a single error. A nil return means all names exist.
func RequireMethods(cls *Class, names ...string) error {
	var missing []string

	for _, name := range names {
		if !cls.Has(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s.{%s}", ErrMissingMethod, cls.name, strings.Join(missing, ", "))
	}

	return nil
}
