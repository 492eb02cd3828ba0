package logger

import "errors"

// ErrInvalidLevel is returned when a log level name cannot be parsed.
var ErrInvalidLevel = errors.New("invalid log level")
