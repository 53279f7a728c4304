// Package registry models a class as an ordered method registry with
// single inheritance, and drives batch wrapping of its methods.
//
// A Class holds unbound methods: callables whose first declared
// parameter is the receiver. Lookup walks the base chain, Bind fixes a
// concrete receiver, and WrapMethods replaces a named subset of methods
// with wrapped forms, either on the class itself or on an independent
// derived copy.
package registry
