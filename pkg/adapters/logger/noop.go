package logger

import "github.com/user/placeholder/pkg/ports"

// NoopLogger discards all messages.
// Used in tests and for the quiet log level.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{})  {}
func (l *NoopLogger) Warn(msg string, args ...interface{})  {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns the same no-op logger.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}

// New returns a console logger for level, or a no-op logger for LevelQuiet.
func New(level ports.LogLevel) ports.Logger {
	if level >= ports.LevelQuiet {
		return NewNoop()
	}
	return NewConsole(level)
}

var _ ports.Logger = (*NoopLogger)(nil)
