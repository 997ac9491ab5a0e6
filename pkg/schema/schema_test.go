package schema_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/schema"
	"github.com/dmitrymomot/fieldcheck/pkg/validation"
)

const signupYAML = `
rules:
  name: required|min:3
  email: [required, email]
  age: "min:18"
messages:
  name:
    required: Tell us your {field}
stop_rules:
  name: required
stop_fields: [email]
`

func TestParse(t *testing.T) {
	t.Run("YAML keeps field order", func(t *testing.T) {
		s, err := schema.Parse([]byte(signupYAML))
		require.NoError(t, err)

		assert.Equal(t, []validation.FieldRule{
			{Field: "name", Rules: "required|min:3"},
			{Field: "email", Rules: "required|email"},
			{Field: "age", Rules: "min:18"},
		}, s.Rules)
		assert.Equal(t, messages.FieldMessages{"name": {"required": "Tell us your {field}"}}, s.Messages)
		assert.Equal(t, []validation.FieldRule{{Field: "name", Rules: "required"}}, s.StopRules)
		assert.Equal(t, []string{"email"}, s.StopFields)
	})

	t.Run("JSON document", func(t *testing.T) {
		s, err := schema.Parse([]byte(`{"rules": {"zip": "required", "city": ["required", "min:2"]}, "stop_fields": ["zip"]}`))
		require.NoError(t, err)

		assert.Equal(t, []validation.FieldRule{
			{Field: "zip", Rules: "required"},
			{Field: "city", Rules: "required|min:2"},
		}, s.Rules)
		assert.Equal(t, []string{"zip"}, s.StopFields)
	})

	t.Run("null rule value", func(t *testing.T) {
		s, err := schema.Parse([]byte("rules:\n  name:\n"))
		require.NoError(t, err)
		assert.Equal(t, []validation.FieldRule{{Field: "name", Rules: ""}}, s.Rules)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := schema.Parse(nil)
		assert.ErrorIs(t, err, schema.ErrEmptySchema)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := schema.Parse([]byte("rule:\n  name: required\n"))
		assert.ErrorIs(t, err, schema.ErrFailedToParse)
	})

	t.Run("rules must be a mapping", func(t *testing.T) {
		_, err := schema.Parse([]byte("rules: [required]\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidRules)
	})

	t.Run("nested rule value", func(t *testing.T) {
		_, err := schema.Parse([]byte("rules:\n  name:\n    required: true\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidRules)
	})

	t.Run("stop_rules must be a mapping", func(t *testing.T) {
		_, err := schema.Parse([]byte("stop_rules: required\n"))
		assert.ErrorIs(t, err, schema.ErrInvalidStopRules)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(signupYAML), 0o600))

		s, err := schema.Load(context.Background(), path)
		require.NoError(t, err)
		assert.Len(t, s.Rules, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := schema.Load(context.Background(), filepath.Join(t.TempDir(), "none.yaml"))
		require.ErrorIs(t, err, schema.ErrFailedToReadFile)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := schema.Load(ctx, "whatever.yaml")
		assert.ErrorIs(t, err, schema.ErrLoadingCancelled)
	})
}

func TestSchema_Apply(t *testing.T) {
	s, err := schema.Parse([]byte(signupYAML))
	require.NoError(t, err)

	t.Run("declares rules, messages and stops", func(t *testing.T) {
		v := s.Apply(validation.New(map[string]any{
			"name":  "",
			"email": "nope",
			"age":   10,
		}))

		assert.Equal(t, []string{"name", "email", "age"}, v.Fields())
		assert.False(t, v.IsValid())
		// name stops after required; email is a stop field, so age never runs.
		assert.Equal(t, []string{
			"Tell us your name",
			"email must be a valid email",
		}, v.Errors())
	})

	t.Run("valid input", func(t *testing.T) {
		v := s.Apply(validation.New(map[string]any{
			"name":  "Alice",
			"email": "alice@example.com",
			"age":   30,
		}))
		assert.True(t, v.IsValid())
	})
}
