// Package schema reads rule declarations from YAML or JSON documents:
//
//	rules:
//	  name: required|min:3
//	  email: [required, email]
//	  age: min:18
//	messages:
//	  name:
//	    required: Tell us your {field}
//	stop_rules:
//	  name: required
//	stop_fields: [email]
//
// Field order under rules and stop_rules is kept as written. A rule value is
// either a rule string or a list of rule strings joined with "|". JSON
// documents are read by the same YAML decoder.
package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/messages"
	"github.com/dmitrymomot/fieldcheck/pkg/validation"
)

// Schema is a parsed rule document.
type Schema struct {
	Rules      []validation.FieldRule
	Messages   messages.FieldMessages
	StopRules  []validation.FieldRule
	StopFields []string
}

type document struct {
	Rules      yaml.Node              `yaml:"rules"`
	Messages   messages.FieldMessages `yaml:"messages"`
	StopRules  yaml.Node              `yaml:"stop_rules"`
	StopFields []string               `yaml:"stop_fields"`
}

// Parse decodes a schema document. Unknown top-level keys are rejected.
func Parse(content []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySchema
		}
		return nil, errors.Join(ErrFailedToParse, err)
	}

	rules, err := fieldRules(&doc.Rules)
	if err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}
	stopRules, err := fieldRules(&doc.StopRules)
	if err != nil {
		return nil, errors.Join(ErrInvalidStopRules, err)
	}

	return &Schema{
		Rules:      rules,
		Messages:   doc.Messages,
		StopRules:  stopRules,
		StopFields: doc.StopFields,
	}, nil
}

// Load reads and parses the schema file at path.
func Load(ctx context.Context, path string) (*Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(content)
}

// Apply declares the schema on v and returns v.
func (s *Schema) Apply(v *validation.Validator) *validation.Validator {
	v.SetRulesOrdered(s.Rules, s.Messages)
	for _, sr := range s.StopRules {
		v.StopRule(sr.Field, sr.Rules)
	}
	return v.StopFields(s.StopFields...)
}

// fieldRules reads a mapping node of field -> rule string (or list of rule
// strings) in document order. A missing or null node yields no rules.
func fieldRules(node *yaml.Node) ([]validation.FieldRule, error) {
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	out := make([]validation.FieldRule, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: field name must be a string", key.Line)
		}
		rules, err := ruleString(value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key.Value, err)
		}
		out = append(out, validation.FieldRule{Field: key.Value, Rules: rules})
	}
	return out, nil
}

func ruleString(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return "", nil
		}
		return node.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("line %d: rule must be a string", item.Line)
			}
			parts = append(parts, item.Value)
		}
		return strings.Join(parts, "|"), nil
	}
	return "", fmt.Errorf("line %d: expected a rule string or a list of rules", node.Line)
}
