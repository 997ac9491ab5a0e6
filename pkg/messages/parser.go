package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes a flat "rule: template" document.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]string, error)

	// SupportsFileExtension accepts the extension with or without a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser matching the file extension, or nil when
// the format is not supported.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// YAMLParser parses YAML template documents.
type YAMLParser struct{}

// NewYAMLParser creates a parser for .yaml and .yml template files.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes a flat YAML mapping of rule name to template. Non-string
// values are rejected with ErrInvalidTemplate.
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return flatten(data)
}

// SupportsFileExtension reports whether ext is yaml or yml, with or without
// the leading dot, in any case.
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser parses JSON template documents.
type JSONParser struct{}

// NewJSONParser creates a parser for .json template files.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes a flat JSON object of rule name to template.
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return flatten(data)
}

// SupportsFileExtension reports whether ext is json.
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func flatten(data map[string]any) (map[string]string, error) {
	result := make(map[string]string, len(data))
	for rule, val := range data {
		tmpl, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: rule %q has %T", ErrInvalidTemplate, rule, val)
		}
		result[rule] = tmpl
	}
	return result, nil
}
