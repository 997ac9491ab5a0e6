package messages

import (
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// FieldPlaceholder is replaced with the field name when a template is rendered.
const FieldPlaceholder = "{field}"

// FieldMessages holds per-field custom templates: field -> rule -> template.
type FieldMessages map[string]map[string]string

// DefaultTemplates returns a fresh copy of the built-in rule templates.
func DefaultTemplates() map[string]string {
	return map[string]string{
		"min":      "{field} should be greater than or equal to $0",
		"max":      "{field} should be equal or less than $0",
		"email":    "{field} must be a valid email",
		"required": "{field} is required",
	}
}

// Store resolves and renders error message templates. Per-field templates
// take precedence over the global rule templates.
type Store struct {
	mu     sync.RWMutex
	global map[string]string
	fields FieldMessages
}

// NewStore creates a store holding the default templates extended by
// overrides, applied in order.
func NewStore(overrides ...map[string]string) *Store {
	s := &Store{
		global: DefaultTemplates(),
		fields: make(FieldMessages),
	}
	for _, o := range overrides {
		s.Extend(o)
	}
	return s
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields := make(FieldMessages, len(s.fields))
	for field, byRule := range s.fields {
		fields[field] = maps.Clone(byRule)
	}
	return &Store{global: maps.Clone(s.global), fields: fields}
}

// Extend merges templates into the global table, replacing existing rules.
func (s *Store) Extend(templates map[string]string) {
	if len(templates) == 0 {
		return
	}
	s.mu.Lock()
	maps.Copy(s.global, templates)
	s.mu.Unlock()
}

// SetFieldMessages replaces the per-field table with m. An empty m leaves the
// current table untouched.
func (s *Store) SetFieldMessages(m FieldMessages) {
	if len(m) == 0 {
		return
	}
	fields := make(FieldMessages, len(m))
	for field, byRule := range m {
		fields[field] = maps.Clone(byRule)
	}
	s.mu.Lock()
	s.fields = fields
	s.mu.Unlock()
}

// Template returns the template for (field, rule): the per-field template if
// one exists, otherwise the global one.
func (s *Store) Template(field, rule string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tmpl, ok := s.fields[field][rule]; ok {
		return tmpl, true
	}
	tmpl, ok := s.global[rule]
	return tmpl, ok
}

// Render resolves and interpolates the template for (field, rule). The
// boolean is false when no template exists; no message is produced then.
func (s *Store) Render(field, rule string, params []any) (string, bool) {
	tmpl, ok := s.Template(field, rule)
	if !ok {
		return "", false
	}
	return Interpolate(tmpl, field, params), true
}

// Global returns a copy of the global rule templates.
func (s *Store) Global() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.global)
}

// Matches $N where N is a decimal index into the rule params.
var paramRegex = regexp.MustCompile(`\$(\d+)`)

// Interpolate replaces {field} with field, then every $N with the string form
// of params[N]. Placeholders pointing past the end of params are kept as is.
func Interpolate(tmpl, field string, params []any) string {
	msg := strings.ReplaceAll(tmpl, FieldPlaceholder, field)

	return paramRegex.ReplaceAllStringFunc(msg, func(match string) string {
		idx, err := strconv.Atoi(match[1:])
		// "$01" is not index 1
		if err != nil || strconv.Itoa(idx) != match[1:] || idx >= len(params) {
			return match
		}
		return paramString(params[idx])
	})
}

func paramString(p any) string {
	switch v := p.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
