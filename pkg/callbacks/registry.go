package callbacks

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Validator checks one field value against a rule. Params are the rule's
// parsed parameters, each an int or a string.
type Validator interface {
	Validate(field string, value any, params ...any) bool
}

// RawValidator is a Validator that wants the rule's parameter block as
// written instead of the parsed params. The engine calls ValidateRaw for it.
type RawValidator interface {
	Validator
	ValidateRaw(field string, value any, raw string) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(field string, value any, params ...any) bool

// Validate calls f.
func (f ValidatorFunc) Validate(field string, value any, params ...any) bool {
	return f(field, value, params...)
}

// Registry maps rule names to validators. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{validators: make(map[string]Validator)}
}

// NewBuiltinRegistry creates a registry holding only the built-in rules.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

// Register adds or replaces the validator for name.
// A blank name or a nil validator is rejected with ErrInvalidArgument.
func (r *Registry) Register(name string, fn Validator) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: validator name must be a non-empty string", ErrInvalidArgument)
	}
	if fn == nil {
		return fmt.Errorf("%w: validator %q is nil", ErrInvalidArgument, name)
	}
	if f, ok := fn.(ValidatorFunc); ok && f == nil {
		return fmt.Errorf("%w: validator %q is nil", ErrInvalidArgument, name)
	}

	r.mu.Lock()
	r.validators[name] = fn
	r.mu.Unlock()
	return nil
}

// RegisterFunc is a shorthand for Register(name, ValidatorFunc(fn)).
func (r *Registry) RegisterFunc(name string, fn func(field string, value any, params ...any) bool) error {
	if fn == nil {
		return fmt.Errorf("%w: validator %q is nil", ErrInvalidArgument, name)
	}
	return r.Register(name, ValidatorFunc(fn))
}

// MustRegister works like Register but panics on invalid arguments.
func (r *Registry) MustRegister(name string, fn Validator) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the validator registered for name. The boolean is false when
// the rule is unknown; callers treat that as "skip this rule".
func (r *Registry) Lookup(name string) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.validators[name]
	return fn, ok
}

// Has reports whether a validator is registered for name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.validators))
}

// Clone returns an independent copy of the registry. Registrations on the
// copy do not affect the original and vice versa.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{validators: maps.Clone(r.validators)}
}

var defaultRegistry = NewBuiltinRegistry()

// Default returns the process-wide registry. Validation sessions take a
// snapshot of it when they are created.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a validator to the process-wide registry. Sessions created
// afterwards see it; sessions that already exist do not.
func Register(name string, fn Validator) error {
	return defaultRegistry.Register(name, fn)
}

// RegisterFunc adds a validator function to the process-wide registry.
func RegisterFunc(name string, fn func(field string, value any, params ...any) bool) error {
	return defaultRegistry.RegisterFunc(name, fn)
}
