package rulepack

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/cache"
)

// patterns caches compiled patterns; nil marks a pattern that does not compile.
var patterns = cache.NewLRU[string, *regexp.Regexp](256)

// RegexRule is the registered regex rule. In a validation session it receives
// the parameter block as written, so "regex:^[a-z]{2,4}$" matches against
// exactly "^[a-z]{2,4}$". Patterns still cannot contain "|", which separates
// rules.
type RegexRule struct{}

// Validate matches against params joined back with ",". Params coming from
// the rule parser have lost any text after a leading number, so prefer
// ValidateRaw where the raw block is available.
func (RegexRule) Validate(field string, value any, params ...any) bool {
	return Regex(field, value, params...)
}

// ValidateRaw matches value against raw.
func (RegexRule) ValidateRaw(_ string, value any, raw string) bool {
	return matches(value, raw)
}

// Regex reports whether value is a string matching the pattern given as
// params, joined with ",". A pattern that does not compile lets every value
// pass.
func Regex(_ string, value any, params ...any) bool {
	return matches(value, strings.Join(paramStrings(params), ","))
}

func matches(value any, pattern string) bool {
	if pattern == "" {
		return true
	}
	s, ok := value.(string)
	if !ok {
		return false
	}

	re := compile(pattern)
	if re == nil {
		return true
	}
	return re.MatchString(s)
}

func compile(pattern string) *regexp.Regexp {
	if re, ok := patterns.Get(pattern); ok {
		return re
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	patterns.Put(pattern, re)
	return re
}
