package messages

import "errors"

var (
	// Source loading
	ErrLoadingCancelled   = errors.New("loading message templates cancelled")
	ErrFailedToReadFile   = errors.New("failed to read message templates file")
	ErrFailedToParseFile  = errors.New("failed to parse message templates file")
	ErrUnsupportedFormat  = errors.New("unsupported message templates file format")
	ErrFailedToLoadSource = errors.New("failed to load message templates")

	// Parsing
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrInvalidTemplate   = errors.New("message template must be a string")
)
