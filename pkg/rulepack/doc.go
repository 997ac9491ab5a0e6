// Package rulepack provides optional rules on top of the built-in required,
// min, max and email rules.
//
// Rules are installed into a registry together with their default message
// templates:
//
//	reg := callbacks.NewBuiltinRegistry()
//	if err := rulepack.Register(reg); err != nil {
//	    return err
//	}
//	v := validation.New(input,
//	    validation.WithRegistry(reg),
//	    validation.WithMessages(rulepack.Templates()),
//	)
//	v.SetRule("id", "required|uuid").SetRule("status", "in:draft,published")
//
// Available rules:
//
//   - uuid: canonical 36 character UUID string
//   - alpha, alpha_num: ASCII letters (and digits)
//   - numeric: a number, or a string holding one
//   - url: absolute URL with scheme and host
//   - in:a,b,... / not_in:a,b,...: value (compared by its string form) is or
//     is not one of the params
//   - regex:pattern: string matches pattern, taken as written after the
//     first ":" (commas and leading digits included, "|" excluded)
//   - between:lo,hi: size within [lo, hi], measured like min and max
//   - size:n: size equal to n
//
// String rules fail for non-string values. Malformed params never fail a
// value, matching the built-in rules.
package rulepack
