package schema

import "errors"

var (
	ErrLoadingCancelled = errors.New("schema loading cancelled")
	ErrFailedToReadFile = errors.New("failed to read schema file")
	ErrFailedToParse    = errors.New("failed to parse schema")
	ErrEmptySchema      = errors.New("schema is empty")
	ErrInvalidRules     = errors.New("rules must map field names to rule strings")
	ErrInvalidStopRules = errors.New("stop_rules must map field names to rule strings")
)
