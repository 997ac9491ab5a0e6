package messages

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
)

// Source provides global rule templates from some external location.
type Source interface {
	Load(ctx context.Context) (map[string]string, error)
}

// MapSource serves templates from memory.
type MapSource map[string]string

// Load implements Source.
func (s MapSource) Load(_ context.Context) (map[string]string, error) {
	return maps.Clone(map[string]string(s)), nil
}

// FileSource reads templates from a YAML or JSON file.
type FileSource struct {
	parser Parser
	path   string
}

// NewFileSource picks a parser from the file extension.
func NewFileSource(path string) (*FileSource, error) {
	parser := NewParserForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return &FileSource{parser: parser, path: path}, nil
}

// NewFileSourceWithParser uses an explicit parser regardless of extension.
func NewFileSourceWithParser(parser Parser, path string) *FileSource {
	return &FileSource{parser: parser, path: path}
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	templates, err := s.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return templates, nil
}

// LoadAll loads every source in order and merges the results; later sources
// override earlier ones.
func LoadAll(ctx context.Context, sources ...Source) (map[string]string, error) {
	merged := make(map[string]string)
	for _, src := range sources {
		if src == nil {
			continue
		}
		templates, err := src.Load(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadSource, err)
		}
		maps.Copy(merged, templates)
	}
	return merged, nil
}
