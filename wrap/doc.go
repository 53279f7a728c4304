// Package wrap composes call-interception layers around callables.
//
// The composition primitive is Wrap: an optional pre-transform over
// the raw (positional, named) argument split, the underlying call,
// and an optional post-transform over the result, strictly in that
// order. Everything else in the package is a specialization of it:
// Args rewrites selected arguments by name before re-invoking the
// callable in fully keyworded form, and Logging records a formatted
// call signature as a pure pre-call side effect.
//
// Wrapped callables keep the original's name, doc and signature, so
// introspection downstream is unaffected. No layer recovers, retries
// or reinterprets an error: failures from transforms and from the
// underlying callable alike propagate unchanged to the caller.
package wrap
