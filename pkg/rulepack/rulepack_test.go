package rulepack_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/callbacks"
	"github.com/dmitrymomot/fieldcheck/pkg/rulepack"
	"github.com/dmitrymomot/fieldcheck/pkg/validation"
)

type check struct {
	name   string
	value  any
	params []any
	want   bool
}

func run(t *testing.T, fn callbacks.ValidatorFunc, tests []check) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fn("field", tt.value, tt.params...))
		})
	}
}

func TestUUID(t *testing.T) {
	run(t, rulepack.UUID, []check{
		{name: "valid v4", value: "550e8400-e29b-41d4-a716-446655440000", want: true},
		{name: "uppercase", value: "550E8400-E29B-41D4-A716-446655440000", want: true},
		{name: "nil uuid", value: "00000000-0000-0000-0000-000000000000", want: true},
		{name: "no hyphens", value: "550e8400e29b41d4a716446655440000", want: false},
		{name: "braced", value: "{550e8400-e29b-41d4-a716-446655440000}", want: false},
		{name: "bad hex", value: "550e8400-e29b-41d4-a716-44665544000g", want: false},
		{name: "empty", value: "", want: false},
		{name: "not a string", value: 42, want: false},
	})
}

func TestAlpha(t *testing.T) {
	run(t, rulepack.Alpha, []check{
		{name: "letters", value: "Hello", want: true},
		{name: "digits", value: "abc1", want: false},
		{name: "space", value: "a b", want: false},
		{name: "empty", value: "", want: false},
		{name: "not a string", value: true, want: false},
	})
}

func TestAlphaNum(t *testing.T) {
	run(t, rulepack.AlphaNum, []check{
		{name: "letters and digits", value: "abc123", want: true},
		{name: "underscore", value: "abc_123", want: false},
		{name: "empty", value: "", want: false},
		{name: "not a string", value: 123, want: false},
	})
}

func TestNumeric(t *testing.T) {
	run(t, rulepack.Numeric, []check{
		{name: "int", value: 42, want: true},
		{name: "float", value: 3.14, want: true},
		{name: "uint8", value: uint8(7), want: true},
		{name: "json number", value: json.Number("12.5"), want: true},
		{name: "numeric string", value: "-12.5", want: true},
		{name: "padded string", value: " 7 ", want: true},
		{name: "exponent", value: "1e3", want: true},
		{name: "word", value: "twelve", want: false},
		{name: "NaN", value: "NaN", want: false},
		{name: "empty", value: "", want: false},
		{name: "bool", value: true, want: false},
		{name: "slice", value: []int{1}, want: false},
	})
}

func TestURL(t *testing.T) {
	run(t, rulepack.URL, []check{
		{name: "https", value: "https://example.com/path?q=1", want: true},
		{name: "with port", value: "http://localhost:8080", want: true},
		{name: "no scheme", value: "example.com", want: false},
		{name: "relative", value: "/path", want: false},
		{name: "scheme only", value: "mailto:someone", want: false},
		{name: "blank", value: "  ", want: false},
		{name: "not a string", value: 1, want: false},
	})
}

func TestIn(t *testing.T) {
	run(t, rulepack.In, []check{
		{name: "string member", value: "draft", params: []any{"draft", "published"}, want: true},
		{name: "string non-member", value: "archived", params: []any{"draft", "published"}, want: false},
		{name: "int against int params", value: 2, params: []any{1, 2}, want: true},
		{name: "string against int params", value: "2", params: []any{1, 2}, want: true},
		{name: "no params", value: "anything", want: true},
		{name: "slice value", value: []string{"draft"}, params: []any{"draft"}, want: false},
	})
}

func TestNotIn(t *testing.T) {
	run(t, rulepack.NotIn, []check{
		{name: "forbidden", value: "root", params: []any{"root", "admin"}, want: false},
		{name: "allowed", value: "alice", params: []any{"root", "admin"}, want: true},
		{name: "no params", value: "root", want: true},
		{name: "map value", value: map[string]any{}, params: []any{"x"}, want: false},
	})
}

func TestRegex(t *testing.T) {
	run(t, rulepack.Regex, []check{
		{name: "match", value: "abc", params: []any{"^[a-z]+$"}, want: true},
		{name: "no match", value: "ABC", params: []any{"^[a-z]+$"}, want: false},
		{name: "string params joined with comma", value: "a,b", params: []any{"^a", "b$"}, want: true},
		{name: "invalid pattern passes", value: "abc", params: []any{"("}, want: true},
		{name: "no params", value: "abc", want: true},
		{name: "not a string", value: 12, params: []any{"^1"}, want: false},
	})
}

func TestRegexRule_InSession(t *testing.T) {
	reg := callbacks.NewBuiltinRegistry()
	require.NoError(t, rulepack.Register(reg))

	tests := []struct {
		name  string
		rule  string
		value string
		want  bool
	}{
		{name: "quantifier with comma", rule: "regex:^[a-z]{2,4}$", value: "abc", want: true},
		{name: "quantifier with comma too long", rule: "regex:^[a-z]{2,4}$", value: "abcdef", want: false},
		{name: "pattern starting with a digit", rule: "regex:1[0-9]{2}", value: "x150", want: true},
		{name: "pattern starting with a digit no match", rule: "regex:1[0-9]{2}", value: "x250", want: false},
		{name: "colon inside pattern", rule: "regex:^[0-9]{2}:[0-9]{2}$", value: "12:30", want: true},
		{name: "combined with other rules", rule: "required|regex:^[A-Z]{1,3}-[0-9]+$", value: "AB-12", want: true},
		{name: "invalid pattern passes", rule: "regex:([a-z", value: "123", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.New(map[string]any{"code": tt.value},
				validation.WithRegistry(reg),
				validation.WithMessages(rulepack.Templates()),
			)
			v.SetRule("code", tt.rule)

			assert.Equal(t, tt.want, v.IsValid(), v.Errors())
			if !tt.want {
				assert.Equal(t, []string{"code format is invalid"}, v.Errors())
			}
		})
	}

	t.Run("registered as a raw validator", func(t *testing.T) {
		fn, ok := reg.Lookup(rulepack.RuleRegex)
		require.True(t, ok)
		_, raw := fn.(callbacks.RawValidator)
		assert.True(t, raw)
	})
}

func TestBetween(t *testing.T) {
	run(t, rulepack.Between, []check{
		{name: "number inside", value: 5, params: []any{1, 10}, want: true},
		{name: "number at bound", value: 10, params: []any{1, 10}, want: true},
		{name: "number outside", value: 11, params: []any{1, 10}, want: false},
		{name: "string length", value: "héllo", params: []any{5, 5}, want: true},
		{name: "slice count", value: []int{1, 2, 3}, params: []any{1, 2}, want: false},
		{name: "single bound passes", value: 100, params: []any{1}, want: true},
		{name: "malformed bound passes", value: 100, params: []any{"a", "b"}, want: true},
		{name: "unmeasurable value", value: struct{}{}, params: []any{1, 2}, want: false},
	})
}

func TestSize(t *testing.T) {
	run(t, rulepack.Size, []check{
		{name: "string", value: "abcd", params: []any{4}, want: true},
		{name: "string mismatch", value: "abc", params: []any{4}, want: false},
		{name: "map", value: map[string]int{"a": 1}, params: []any{1}, want: true},
		{name: "number", value: 7, params: []any{7}, want: true},
		{name: "no params", value: "x", want: true},
	})
}

func TestRegister(t *testing.T) {
	t.Run("installs every rule", func(t *testing.T) {
		reg := callbacks.NewBuiltinRegistry()
		require.NoError(t, rulepack.Register(reg))

		for name := range rulepack.Templates() {
			assert.True(t, reg.Has(name), name)
		}
		assert.True(t, reg.Has(callbacks.RuleRequired))
	})

	t.Run("nil registry", func(t *testing.T) {
		assert.ErrorIs(t, rulepack.Register(nil), rulepack.ErrNilRegistry)
	})

	t.Run("works in a session", func(t *testing.T) {
		reg := callbacks.NewBuiltinRegistry()
		require.NoError(t, rulepack.Register(reg))

		v := validation.New(map[string]any{
			"id":     "not-a-uuid",
			"status": "archived",
			"count":  12,
		},
			validation.WithRegistry(reg),
			validation.WithMessages(rulepack.Templates()),
		)
		v.SetRulesOrdered([]validation.FieldRule{
			{Field: "id", Rules: "required|uuid"},
			{Field: "status", Rules: "in:draft,published"},
			{Field: "count", Rules: "between:1,10"},
		})

		assert.False(t, v.IsValid())
		assert.Equal(t, []string{
			"id must be a valid UUID",
			"status must be one of the allowed values",
			"count must be between 1 and 10",
		}, v.Errors())
	})
}
