// Package logger provides leveled logging for psync.
package logger

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Debugf logs a formatted message only shown in verbose mode.
	Debugf(format string, args ...interface{})

	// Logf logs a formatted informational message.
	Logf(format string, args ...interface{})

	// Warnf logs a formatted message about a problem that did not stop the operation.
	Warnf(format string, args ...interface{})

	// Errorf logs a formatted error message.
	Errorf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (n *noopLogger) Debugf(_ string, _ ...interface{}) {}
func (n *noopLogger) Logf(_ string, _ ...interface{})   {}
func (n *noopLogger) Warnf(_ string, _ ...interface{})  {}
func (n *noopLogger) Errorf(_ string, _ ...interface{}) {}
