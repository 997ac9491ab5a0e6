package validation

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
	"github.com/dmitrymomot/fieldcheck/pkg/messages"
)

// Option configures a Validator.
type Option func(*Validator)

// WithMessages extends the global message templates with overrides, for
// example templates loaded from a messages.Source. Overrides are applied in
// order on the session's own store, after WithMessageStore.
func WithMessages(overrides map[string]string) Option {
	return func(v *Validator) {
		if len(overrides) > 0 {
			v.overrides = append(v.overrides, overrides)
		}
	}
}

// WithMessageStore starts the session from a copy of store. Overrides and
// per-field messages set on the session stay in the copy, so one store can
// seed many sessions.
func WithMessageStore(store *messages.Store) Option {
	return func(v *Validator) {
		if store != nil {
			v.messages = store
		}
	}
}

// WithRegistry uses reg instead of a snapshot of the default registry.
// Callbacks registered on the session are written to reg.
func WithRegistry(reg *callbacks.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// WithLogger sets the logger used for debug output about skipped rules,
// missing templates and stop directives. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithContext sets the context passed to the logger, so handlers that read
// values from it (see logger.WithContextValue) tag the session's records.
// Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(v *Validator) {
		if ctx != nil {
			v.ctx = ctx
		}
	}
}
