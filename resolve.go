package wirebox

import "reflect"

// Resolve looks up and produces a value for T. The tables are queried in
// fixed precedence order: constructor first, then factory, then instance,
// then static type. The first binding whose result is assignable to T wins;
// a binding that fails the assignability check is skipped, not an error.
//
// If no table yields a match, Resolve fails with UnregisteredTypeError.
// That is the registry's only error kind.
func Resolve[T any](r *Registry) (T, error) {
	want := reflect.TypeOf((*T)(nil)).Elem()

	v, err := r.resolve(typeKey(want), want)
	if err != nil {
		var zero T
		return zero, err
	}

	// A nil value can be stored for a nilable T; the assertion reports
	// !ok for it, and the zero value is the correct result.
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, nil
	}

	return t, nil
}

// MustResolve is like Resolve but panics when no binding is found. It is
// the fail-fast form used at composition time, where a missing binding is
// a programming error rather than a runtime condition.
func MustResolve[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}

	return v
}

// ResolveType looks up the type descriptor bound for T with
// RegisterStaticType. It runs the same four-table resolution under T's
// derived ".Type" key, so value bindings for T are never returned.
func ResolveType[T any](r *Registry) (reflect.Type, error) {
	want := reflect.TypeOf((*reflect.Type)(nil)).Elem()

	v, err := r.resolve(typeKeyFor[T]()+staticSuffix, want)
	if err != nil {
		return nil, err
	}

	t, _ := v.(reflect.Type)
	return t, nil
}
