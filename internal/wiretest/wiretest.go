// Package wiretest provides shared fixtures for wirebox tests.
package wiretest

// Widget deliberately shares its unqualified name with a Widget type
// declared in the root test package. Binding keys drop the package
// qualifier, so the two types contend for the same table slots; tests use
// this pair to pin the collision behavior.
type Widget struct {
	Origin string
}
