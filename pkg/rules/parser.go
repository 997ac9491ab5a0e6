package rules

import (
	"fmt"
	"math"
	"strings"
)

const (
	ruleSeparator  = "|"
	paramsMarker   = ":"
	paramSeparator = ","
)

// Rule is a single parsed rule: a name and its ordered parameters.
// Each parameter is either an int or a string. Raw keeps the parameter block
// as written after the first ":", trimmed, for rules whose argument is not a
// list (such as a pattern containing commas).
type Rule struct {
	Name   string
	Params []any
	Raw    string
}

// String renders the rule back into its token form, e.g. "min:3".
func (r Rule) String() string {
	if len(r.Params) == 0 {
		return r.Name
	}
	parts := make([]string, len(r.Params))
	for i, p := range r.Params {
		parts[i] = fmt.Sprint(p)
	}
	return r.Name + paramsMarker + strings.Join(parts, paramSeparator)
}

// Spec is the ordered list of rules declared for one field.
type Spec []Rule

// Names returns rule names in declaration order.
func (s Spec) Names() []string {
	names := make([]string, 0, len(s))
	for _, r := range s {
		names = append(names, r.Name)
	}
	return names
}

// String renders the spec back into rule-string form.
func (s Spec) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return strings.Join(parts, ruleSeparator)
}

// Parse turns a raw rule string into a Spec. It never fails: malformed
// segments are dropped.
func Parse(raw string) Spec {
	tokens := strings.Split(strings.TrimSpace(raw), ruleSeparator)

	spec := make(Spec, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, block, hasParams := strings.Cut(token, paramsMarker)
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		rule := Rule{Name: name}
		if hasParams {
			rule.Params = parseParams(block)
			rule.Raw = strings.TrimSpace(block)
		}
		spec = append(spec, rule)
	}
	return spec
}

// Names parses raw and returns only the rule names.
func Names(raw string) []string {
	return Parse(raw).Names()
}

func parseParams(block string) []any {
	var params []any
	for _, p := range strings.Split(strings.TrimSpace(block), paramSeparator) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		params = append(params, coerce(p))
	}
	return params
}

// coerce converts a parameter starting with decimal digits into an int of its
// leading digit run. Values beyond the int range saturate at math.MaxInt.
func coerce(p string) any {
	n, digits := 0, 0
	for digits < len(p) && p[digits] >= '0' && p[digits] <= '9' {
		d := int(p[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
		} else if n != math.MaxInt {
			n = n*10 + d
		}
		digits++
	}
	if digits == 0 {
		return p
	}
	return n
}
