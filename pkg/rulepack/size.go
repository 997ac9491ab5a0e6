package rulepack

import (
	"github.com/spf13/cast"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
)

// Between reports whether the size of value (see callbacks.Size) lies within
// [params[0], params[1]]. Missing or non-numeric bounds let the value pass.
func Between(_ string, value any, params ...any) bool {
	if len(params) < 2 {
		return true
	}
	lo, errLo := cast.ToFloat64E(params[0])
	hi, errHi := cast.ToFloat64E(params[1])
	if errLo != nil || errHi != nil {
		return true
	}

	size, ok := callbacks.Size(value)
	return ok && size >= lo && size <= hi
}

// Size reports whether the size of value equals params[0].
func Size(_ string, value any, params ...any) bool {
	if len(params) == 0 {
		return true
	}
	want, err := cast.ToFloat64E(params[0])
	if err != nil {
		return true
	}

	size, ok := callbacks.Size(value)
	return ok && size == want
}
