package main

import "errors"

var (
	ErrInvalidDocument    = errors.New("document failed validation")
	ErrFailedToReadInput  = errors.New("failed to read input document")
	ErrFailedToDecodeJSON = errors.New("input must be a JSON object")
	ErrUnknownOutput      = errors.New("unknown output format")
)
