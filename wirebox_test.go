package wirebox_test

import (
	"sync/atomic"
)

// ============================================================================
// Shared Test Types
// ============================================================================

// testLogger is a basic interface dependency for testing.
type testLogger interface {
	Log(msg string)
}

// consoleLogger is a concrete testLogger implementation.
type consoleLogger struct {
	Name string
	logs []string
}

func (c *consoleLogger) Log(msg string) {
	c.logs = append(c.logs, msg)
}

// tService is a basic struct dependency for testing.
type tService struct {
	ID int
}

// tDatabase is a dependency that is typically left unregistered in tests.
type tDatabase struct {
	DSN string
}

// Widget collides by unqualified name with wiretest.Widget.
type Widget struct {
	Origin string
}

// countingFactory returns a factory producing distinct *tService values and
// an atomic counter tracking how many times it was invoked.
func countingFactory() (func() *tService, *atomic.Int64) {
	var calls atomic.Int64
	return func() *tService {
		n := calls.Add(1)
		return &tService{ID: int(n)}
	}, &calls
}
