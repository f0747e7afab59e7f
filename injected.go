package wirebox

import "sync"

// Injected is an eager dependency accessor. It resolves T exactly once, at
// construction, and stores the result immutably; reading the value never
// touches the registry again.
//
// Construction panics when T is not registered. A missing binding at
// composition time is treated as an unrecoverable startup condition, so it
// surfaces immediately instead of at some later read.
type Injected[T any] struct {
	value T
}

// NewInjected resolves T from the given registry, or from the default
// registry when none is given, and wraps the result. Panics with the
// resolution error when no binding is found.
func NewInjected[T any](reg ...*Registry) Injected[T] {
	return Injected[T]{value: MustResolve[T](pickRegistry(reg))}
}

// Value returns the resolved dependency.
func (i Injected[T]) Value() T {
	return i.value
}

// LazyInjected is a deferred dependency accessor. It holds only a registry
// reference until the first read, then resolves T once and caches both the
// value and the error for its lifetime. Concurrent first reads are safe and
// still resolve exactly once.
type LazyInjected[T any] struct {
	registry *Registry
	once     sync.Once
	value    T
	err      error
}

// NewLazyInjected creates a lazy accessor bound to the given registry, or
// to the default registry when none is given. No resolution happens until
// the first Get or MustGet.
func NewLazyInjected[T any](reg ...*Registry) *LazyInjected[T] {
	return &LazyInjected[T]{registry: pickRegistry(reg)}
}

// Get returns the resolved dependency, resolving it on the first call. The
// outcome of that first resolution, value or error, is what every later
// call returns.
func (l *LazyInjected[T]) Get() (T, error) {
	l.once.Do(func() {
		l.value, l.err = Resolve[T](l.registry)
	})

	return l.value, l.err
}

// MustGet is like Get but panics on a resolution error.
func (l *LazyInjected[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}

	return v
}

func pickRegistry(reg []*Registry) *Registry {
	if len(reg) > 0 && reg[0] != nil {
		return reg[0]
	}

	return Default()
}
