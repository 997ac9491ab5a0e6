// Package validation runs rule declarations against an input map and collects
// human-readable error messages.
//
// A session is created per input:
//
//	v := validation.New(map[string]any{"email": "not-an-email", "name": ""})
//	v.SetRule("email", "email").SetRule("name", "required")
//	if !v.IsValid() {
//	    fmt.Println(v.Errors())
//	    // [email must be a valid email name is required]
//	}
//
// Rules are resolved through a callbacks.Registry. By default each session
// takes a snapshot of callbacks.Default when it is created, so later global
// registrations do not leak into existing sessions, and RegisterCallback only
// affects the session it is called on.
//
// Messages come from a messages.Store: per-field templates passed to SetRule,
// SetRules or SetMessages win over global rule templates. A failing rule with
// no template produces no message and does not count as an error.
//
// # Stop directives
//
// StopRule ends evaluation of a field's remaining rules right after the named
// rule ran, provided the session holds at least one error at that point.
// StopField ends the whole session after the named field, under the same
// condition. In both cases the error count is the session total, so an error
// from an earlier field is enough to trigger a stop.
package validation
