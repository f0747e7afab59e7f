// Package wirebox provides a runtime dependency-resolution registry for Go.
// Callers register how to obtain an instance of a type (as a shared
// instance, a factory, a constructor, or a type-level binding) and other
// code later resolves an instance of that type without knowing which
// strategy produced it.
//
// # Overview
//
// A Registry owns four binding tables keyed by a type's unqualified name:
//   - Instance: a concrete value, returned unchanged on every resolution
//   - Factory: a zero-argument function invoked anew on every resolution
//   - Constructor: same contract as a factory, kept as a separate table so
//     a binding's resolution key can differ from the callable's return type
//   - Static type: a reflect.Type descriptor, for when the dependency is a
//     type itself rather than a value
//
// Resolution queries the tables in a fixed precedence order (constructor,
// factory, instance, static type) and the first binding whose result is
// assignable to the requested type wins. This lets a later constructor or
// factory registration shadow an earlier instance binding without removing
// it.
//
// # Basic Usage
//
// Register against the process-wide default registry and resolve:
//
//	wirebox.RegisterInstance[Logger](wirebox.Default(), &ConsoleLogger{})
//	wirebox.RegisterFactory(wirebox.Default(), func() *Session {
//	    return OpenSession()
//	})
//
//	logger, err := wirebox.Resolve[Logger](wirebox.Default())
//
// Independent registries can be constructed with New for isolation, for
// example in tests.
//
// # Overriding Bindings
//
// Registration never clobbers an existing binding unless WithOverride is
// given. With WithOverride, instance, factory, and constructor registration
// first purge the key from all four tables, fully resetting the resolution
// path:
//
//	wirebox.RegisterInstance[Logger](reg, &FileLogger{}, wirebox.WithOverride())
//
// # Injected Accessors
//
// Injected resolves eagerly at construction and panics if the type is not
// registered; LazyInjected defers resolution to the first read and caches
// the result:
//
//	type Server struct {
//	    logger wirebox.Injected[Logger]
//	    db     *wirebox.LazyInjected[*Database]
//	}
//
// # Type Keys
//
// Bindings are keyed by the unqualified type name: the package qualifier is
// dropped, so pkga.Widget and pkgb.Widget share one key. Two distinct types
// with colliding unqualified names are indistinguishable to the registry.
// This is a deliberate compatibility trade-off, not a defect; keep type
// names unique across the packages you register from.
//
// # Thread Safety
//
// All registry operations are safe for concurrent use. The four tables are
// guarded as a single unit, and factories and constructors are invoked
// outside the lock, so a factory may itself call Resolve.
package wirebox
