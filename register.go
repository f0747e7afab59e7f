package wirebox

import "reflect"

// RegisterInstance stores a concrete value that every resolution of T
// returns unchanged. The binding key is derived from T, which may be an
// interface the instance implements rather than its concrete type.
//
// Registration never fails. Without WithOverride an existing instance
// binding for the key is left untouched; with WithOverride the key is first
// purged from all four tables.
func RegisterInstance[T any](r *Registry, instance T, opts ...RegisterOption) {
	options := newRegisterOptions(opts)
	r.putInstance(typeKeyFor[T](), instance, options.override)
}

// RegisterFactory stores a zero-argument function invoked anew on every
// resolution. The binding key is derived from the factory's declared return
// type. A nil factory is stored but never matches at resolution time.
//
// Same override contract as RegisterInstance.
func RegisterFactory[T any](r *Registry, factory func() T, opts ...RegisterOption) {
	options := newRegisterOptions(opts)

	var fn func() any
	if factory != nil {
		fn = func() any { return factory() }
	}

	r.putFactory(typeKeyFor[T](), fn, options.override)
}

// RegisterConstructor stores a zero-argument function invoked anew on every
// resolution, keyed by the explicit type parameter T rather than by the
// callable's return type. The two may disagree, which is why constructors
// live in a table separate from factories: the constructor's result is only
// checked against the requested type when it is resolved. A nil constructor
// is stored but never matches.
//
// Same override contract as RegisterInstance.
func RegisterConstructor[T any](r *Registry, ctor func() any, opts ...RegisterOption) {
	options := newRegisterOptions(opts)
	r.putConstructor(typeKeyFor[T](), ctor, options.override)
}

// RegisterStaticType binds a type descriptor, retrievable through
// ResolveType[T], for when the dependency is a type itself rather than an
// instance. The descriptor is stored under the key for T suffixed with
// ".Type", so it never shadows value bindings for T.
//
// Unlike the other three registrations, WithOverride here does not purge
// the other tables: it only permits overwriting a previously bound
// descriptor. This asymmetry is deliberate compatibility behavior.
func RegisterStaticType[T any](r *Registry, static reflect.Type, opts ...RegisterOption) {
	options := newRegisterOptions(opts)
	r.putStaticType(typeKeyFor[T]()+staticSuffix, static, options.override)
}

// Contains reports whether any of the four tables holds a binding for T.
func Contains[T any](r *Registry) bool {
	return r.containsKey(typeKeyFor[T]())
}

// Remove deletes T's binding from all four tables.
func Remove[T any](r *Registry) {
	r.removeAll(typeKeyFor[T]())
}
