// Package chi provides wirebox integration for the Chi router.
//
// The middleware attaches a Registry to each request's context, and Handle
// wraps controller methods so the controller is resolved from that registry
// per request.
//
// Example usage:
//
//	reg := wirebox.New()
//	wirebox.RegisterInstance[UserController](reg, NewUserController(db))
//
//	r := chi.NewRouter()
//	wireboxchi.Attach(r, reg)
//
//	r.Get("/users/{id}", wireboxchi.Handle(UserController.GetByID))
package chi

import (
	"context"
	"log/slog"
	"net/http"

	chiv5 "github.com/go-chi/chi/v5"

	"github.com/wirebox/wirebox"
)

// contextKey is the private type for context values set by this package.
type contextKey struct{}

// Config holds the configuration for the middleware and handler wrappers.
type Config struct {
	// ErrorHandler is called when controller resolution fails.
	// If nil, a default handler logging through Logger and returning
	// 500 Internal Server Error is used.
	ErrorHandler func(http.ResponseWriter, *http.Request, error)

	// Logger is used by the default handlers. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Option configures the middleware and handler wrappers.
type Option func(*Config)

// WithErrorHandler sets the handler for controller resolution failures.
func WithErrorHandler(h func(http.ResponseWriter, *http.Request, error)) Option {
	return func(c *Config) {
		c.ErrorHandler = h
	}
}

// WithLogger sets the logger used by the default handlers.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

func newConfig(opts []Option) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ErrorHandler == nil {
		logger := cfg.Logger
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			logger.Error("failed to resolve controller",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}

	return cfg
}

// Middleware attaches the given registry to each request's context so that
// Handle and FromContext can reach it.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(wireboxchi.Middleware(reg))
func Middleware(reg *wirebox.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKey{}, reg)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Attach installs the registry middleware on a Chi router.
func Attach(router chiv5.Router, reg *wirebox.Registry) {
	router.Use(Middleware(reg))
}

// FromContext returns the registry attached to the context by Middleware,
// or nil when none is attached.
func FromContext(ctx context.Context) *wirebox.Registry {
	reg, _ := ctx.Value(contextKey{}).(*wirebox.Registry)
	return reg
}

// Handle wraps a controller method for resolution from the request's
// registry. The controller type T is resolved per request, from the
// registry attached by Middleware, or from the default registry when the
// middleware is not installed.
//
// The method signature should be: func(T, http.ResponseWriter, *http.Request)
//
// Example:
//
//	r.Get("/users/{id}", wireboxchi.Handle(UserController.GetByID))
func Handle[T any](method func(T, http.ResponseWriter, *http.Request), opts ...Option) http.HandlerFunc {
	cfg := newConfig(opts)

	return func(w http.ResponseWriter, r *http.Request) {
		reg := FromContext(r.Context())
		if reg == nil {
			reg = wirebox.Default()
		}

		controller, err := wirebox.Resolve[T](reg)
		if err != nil {
			cfg.ErrorHandler(w, r, err)
			return
		}

		method(controller, w, r)
	}
}
