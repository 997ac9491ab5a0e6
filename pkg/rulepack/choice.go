package rulepack

import (
	"fmt"
	"reflect"
	"slices"
)

// In reports whether the string form of value equals one of params. Params
// parsed from a rule string are ints or strings, so "in:1,2" accepts both 1
// and "1". Without params every value passes.
func In(_ string, value any, params ...any) bool {
	if len(params) == 0 {
		return true
	}
	s, ok := scalarString(value)
	return ok && slices.Contains(paramStrings(params), s)
}

// NotIn is the inverse of In. Non-scalar values fail.
func NotIn(_ string, value any, params ...any) bool {
	s, ok := scalarString(value)
	if !ok {
		return false
	}
	return !slices.Contains(paramStrings(params), s)
}

func scalarString(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct,
		reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface:
		return "", false
	}
	return fmt.Sprint(value), true
}

func paramStrings(params []any) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = fmt.Sprint(p)
	}
	return out
}
