package callbacks

import (
	"encoding/json"
	"net/mail"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// Built-in rule names.
const (
	RuleRequired = "required"
	RuleMin      = "min"
	RuleMax      = "max"
	RuleEmail    = "email"
)

func registerBuiltins(r *Registry) {
	r.MustRegister(RuleRequired, ValidatorFunc(Required))
	r.MustRegister(RuleMin, ValidatorFunc(Min))
	r.MustRegister(RuleMax, ValidatorFunc(Max))
	r.MustRegister(RuleEmail, ValidatorFunc(Email))
}

// Required passes when value is not empty in the loose sense of IsEmpty.
func Required(_ string, value any, _ ...any) bool {
	return !IsEmpty(value)
}

// Min passes when the size of value is at least params[0].
// Size is the rune length for strings, the element count for slices, arrays
// and maps, and the numeric value otherwise.
func Min(_ string, value any, params ...any) bool {
	return compareSize(value, params, func(size, limit float64) bool { return size >= limit })
}

// Max passes when the size of value is at most params[0]. See Min for how the
// size is measured.
func Max(_ string, value any, params ...any) bool {
	return compareSize(value, params, func(size, limit float64) bool { return size <= limit })
}

// Email passes when value is a string holding a single bare email address.
func Email(_ string, value any, _ ...any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return IsEmail(s)
}

// IsEmpty reports whether value is "empty": nil, "", "0", false, a numeric
// zero, an empty slice, array or map, or a nil pointer or interface.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return s == "" || s == "0"
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// IsEmail reports whether s is a single bare address (no display name) with a
// non-empty local part and a dotted domain.
func IsEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// compareSize applies cmp to the measured size of value and the threshold in
// params[0]. A missing or non-numeric threshold is a malformed rule and
// passes; a value that cannot be measured fails.
func compareSize(value any, params []any, cmp func(size, limit float64) bool) bool {
	if len(params) == 0 {
		return true
	}
	limit, err := cast.ToFloat64E(params[0])
	if err != nil {
		return true
	}

	size, ok := Size(value)
	if !ok {
		return false
	}
	return cmp(size, limit)
}

// Size measures value the way min and max do. The boolean is false when
// value has no meaningful size.
func Size(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(rv.String())), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return float64(rv.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	f, err := cast.ToFloat64E(value)
	if err != nil {
		return 0, false
	}
	return f, true
}
