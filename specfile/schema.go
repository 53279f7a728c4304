package specfile

// File is the root of a wrap specification document.
type File struct {
	// Version of the schema. Defaults to "1".
	Version string `yaml:"version,omitempty"`

	// Groups list the wrap directives, applied in order.
	Groups []Group `yaml:"wrap"`
}

// Group assigns one transform specification to one or more methods.
type Group struct {
	// Methods names the methods this group covers. Accepts a single
	// string or an array in YAML.
	Methods StringOrArray `yaml:"methods"`

	// Args maps argument names to registered transform names.
	Args map[string]string `yaml:"args,omitempty"`

	// Output optionally names a transform for the return value.
	Output string `yaml:"output,omitempty"`
}

// StringOrArray is a []string that accepts either a single string or
// an array of strings in YAML.
type StringOrArray []string
