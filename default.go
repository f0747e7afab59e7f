package wirebox

// defaultRegistry is the process-wide shared registry. It is created at
// package initialization, lives for the process duration, and is never
// explicitly destroyed.
var defaultRegistry = New()

// Default returns the process-wide shared registry. Accessors constructed
// without an explicit registry resolve against it.
func Default() *Registry {
	return defaultRegistry
}

// SetDefault replaces the process-wide shared registry. This is similar to
// slog.SetDefault. Passing nil installs a fresh empty registry, since the
// default must always exist.
func SetDefault(r *Registry) {
	if r == nil {
		r = New()
	}

	defaultRegistry = r
}
