package wirebox

import (
	"fmt"
	"reflect"
	"strings"
)

// staticSuffix is appended to a type key to form the lookup key for
// static-type bindings.
const staticSuffix = ".Type"

// typeKey derives the binding key for a type: the unqualified type name with
// the package qualifier stripped. Composite shapes keep their markers, so
// *Widget, []Widget, and Widget are distinct keys.
//
// Because the package qualifier is dropped, two named types that share an
// unqualified name map to the same key. That collision is part of the
// registry's contract; see the package documentation.
func typeKey(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeKey(t.Elem())
	case reflect.Slice:
		return "[]" + typeKey(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), typeKey(t.Elem()))
	case reflect.Map:
		return "map[" + typeKey(t.Key()) + "]" + typeKey(t.Elem())
	case reflect.Chan:
		return "chan " + typeKey(t.Elem())
	}

	if name := t.Name(); name != "" {
		return name
	}

	return lastSegment(t.String())
}

// typeKeyFor returns the binding key for the type parameter T.
func typeKeyFor[T any]() string {
	return typeKey(reflect.TypeOf((*T)(nil)).Elem())
}

// lastSegment strips everything up to and including the final dot, leaving
// the unqualified name of a qualified type string.
func lastSegment(s string) string {
	if idx := strings.LastIndex(s, "."); idx >= 0 {
		return s[idx+1:]
	}

	return s
}

// assignableTo reports whether a resolved value can be treated as the
// requested type. A nil value only matches types that can hold nil.
func assignableTo(v any, want reflect.Type) bool {
	if want == nil {
		return false
	}
	if v == nil {
		return canBeNil(want)
	}

	return reflect.TypeOf(v).AssignableTo(want)
}

// canBeNil reports whether the zero value of t is nil.
func canBeNil(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
