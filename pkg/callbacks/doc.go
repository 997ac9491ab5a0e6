// Package callbacks holds the table of named rule validators used by the
// validation engine.
//
// A validator receives the field name, the field's value and the rule's
// parameters, and reports whether the value passes:
//
//	callbacks.RegisterFunc("even", func(field string, value any, params ...any) bool {
//	    n, ok := value.(int)
//	    return ok && n%2 == 0
//	})
//
// # Scopes
//
// Default returns the process-wide registry, pre-filled with the built-in
// rules. Validation sessions clone it when they are created, so registering a
// rule globally never changes the behaviour of a session that is already
// running. A session can also be given its own registry, which is the usual
// choice in tests:
//
//	reg := callbacks.NewBuiltinRegistry()
//	v := validation.New(input, validation.WithRegistry(reg))
//
// # Built-in rules
//
//   - required: the value is not empty (nil, "", "0", false, 0, empty slice/map)
//   - min:N: size >= N
//   - max:N: size <= N
//   - email: a single bare email address
//
// Size means rune length for strings, element count for slices, arrays and
// maps, and the numeric value for everything else.
//
// Lookup of an unknown name reports false rather than failing; the engine
// skips such rules.
package callbacks
