// Package diagnostic provides structured warnings and errors for
// validating wrap specification files against a method registry.
//
// Key capabilities:
//   - Missing-method and unknown-argument errors with method/argument coordinates
//   - Unknown-transform reports naming the registered alternatives
//   - Warnings for groups that cannot have any effect
package diagnostic
