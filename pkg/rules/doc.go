// Package rules parses the compact rule grammar used to declare field
// validation, for example "required|min:3|max:10".
//
// # Grammar
//
// A rule string is a list of rule tokens separated by "|". Each token is a
// rule name, optionally followed by ":" and a comma-separated parameter block:
//
//	required|min:3|between:1,10|in:draft,published
//
// Parsing is lenient and never fails:
//
//   - Tokens are trimmed and empty tokens ("a||b", "|a|") are dropped.
//   - A token is split on its first ":" only, so "regex:^a:b$" keeps "^a:b$"
//     as its parameter block.
//   - Rule names are trimmed; a token with an empty name (":3") is dropped.
//   - Parameters are trimmed and empty parameters are dropped.
//   - A parameter that starts with decimal digits is converted to an int made
//     of its leading digit run: "12" becomes 12, and so do "12px" and "12.5".
//     Everything else stays a string.
//
// # Usage
//
//	spec := rules.Parse("required|min:3")
//	for _, r := range spec {
//	    fmt.Println(r.Name, r.Params) // required [] / min [3]
//	}
//
// Stop directives only need names:
//
//	rules.Names("required|min:5") // []string{"required", "min"}
package rules
