package input

import "errors"

var (
	ErrFailedToParseForm = errors.New("failed to parse form data")
	ErrInvalidTarget     = errors.New("input source must be a struct or a pointer to struct")
	ErrFailedToDecode    = errors.New("failed to decode struct into input map")
)
