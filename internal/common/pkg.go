package common

import "path"

// PkgAlias returns the last path element of a package or symbol path,
// e.g. "interpose/callable.Func" -> "callable.Func".
// Returns empty string if the path is empty.
func PkgAlias(p string) string {
	if p == "" {
		return ""
	}

	return path.Base(p)
}
