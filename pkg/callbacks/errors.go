package callbacks

import "errors"

// ErrInvalidArgument is returned when a validator is registered with a blank
// name or a nil function.
var ErrInvalidArgument = errors.New("invalid argument")
