// Package specfile provides YAML schema definitions, parsing,
// validation, and the transform registry for declarative method
// wrapping.
//
// A spec file turns ad-hoc wrapping code into a reviewable document:
// it names the methods to wrap, the argument each transform targets,
// and the transform to apply, all by name.
//
// # Schema Overview
//
// The spec file has the following structure:
//
//	version: "1"
//	wrap:
//	  - methods: add                 # single method
//	    args:
//	      x: Increment               # argument name -> transform name
//	  - methods: [add, multiply]     # group sharing one specification
//	    args:
//	      x: Double
//	    output: Stringify            # optional return-value transform
//
// Later groups override earlier ones argument-by-argument when they
// name the same method.
//
// # Transform Registry
//
// Transforms are referenced by name and resolved against a Registry
// populated by the caller. Validation reports unknown transform names,
// missing methods, and arguments the targeted methods do not declare
// before any wrapping takes place.
package specfile
