package wirebox

// RegisterOption configures a registration call.
type RegisterOption interface {
	apply(*registerOptions)
}

// registerOptions holds registration configuration.
type registerOptions struct {
	override bool
}

// registerOptionFunc adapts a function to RegisterOption.
type registerOptionFunc func(*registerOptions)

func (f registerOptionFunc) apply(opts *registerOptions) {
	f(opts)
}

// WithOverride makes the registration replace any existing binding for the
// key. For instance, factory, and constructor registration this purges the
// key from all four tables before inserting, so no stale higher-precedence
// binding survives. Static-type registration only overwrites its own table;
// see RegisterStaticType.
func WithOverride() RegisterOption {
	return registerOptionFunc(func(opts *registerOptions) {
		opts.override = true
	})
}

func newRegisterOptions(opts []RegisterOption) registerOptions {
	var options registerOptions
	for _, opt := range opts {
		opt.apply(&options)
	}

	return options
}
