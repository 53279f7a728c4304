package registry

//go:generate go tool stringer -type=CopyStrategy -output=copystrategy_string.go

// CopyStrategy selects whether batch wrapping mutates the given class
// or derives an independent copy.
type CopyStrategy int

const (
	// Independent constructs a derived class with its own method table,
	// leaving the original class and everything bound from it untouched.
	Independent CopyStrategy = iota

	// InPlace replaces methods on the given class itself. The change is
	// visible through every reference to that class, so it belongs in
	// single-threaded setup code.
	InPlace
)
