package rulepack

import (
	"encoding/json"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

var (
	alphaRegex    = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphaNumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// UUID reports whether value is a UUID string in the canonical
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form.
func UUID(_ string, value any, _ ...any) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	// uuid.Parse also accepts braced and urn forms; check hyphens first.
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// Alpha reports whether value is a non-empty string of ASCII letters.
func Alpha(_ string, value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && alphaRegex.MatchString(s)
}

// AlphaNum reports whether value is a non-empty string of ASCII letters and digits.
func AlphaNum(_ string, value any, _ ...any) bool {
	s, ok := value.(string)
	return ok && alphaNumRegex.MatchString(s)
}

// Numeric reports whether value is a number or a string holding a decimal number.
func Numeric(_ string, value any, _ ...any) bool {
	switch v := value.(type) {
	case json.Number:
		_, err := v.Float64()
		return err == nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return false
		}
		f, err := cast.ToFloat64E(s)
		return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	}

	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// URL reports whether value is an absolute URL with a scheme and a host.
func URL(_ string, value any, _ ...any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
