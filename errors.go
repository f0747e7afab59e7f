package wirebox

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeNotRegistered is the sentinel error underlying every resolution
// failure. Use errors.Is against it, or errors.As with
// UnregisteredTypeError for the requested type.
var ErrTypeNotRegistered = errors.New("type not registered")

var _ error = UnregisteredTypeError{}

// UnregisteredTypeError indicates that resolution found no binding for the
// requested type in any table. It is the only error kind the registry
// produces: registration never fails, and a binding whose value is not
// assignable to the requested type is treated as absent, not as a distinct
// error.
type UnregisteredTypeError struct {
	// Key is the binding key that was looked up.
	Key string

	// Type is the requested type.
	Type reflect.Type
}

func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("no binding registered for %s (key %q)", formatType(e.Type), e.Key)
}

func (e UnregisteredTypeError) Unwrap() error {
	return ErrTypeNotRegistered
}

// formatType formats a reflect.Type for error messages.
func formatType(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
