package logger

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/user/placeholder/pkg/ports"
)

// NewFile creates a logger that appends timestamped lines to a rotating
// log file. The returned io.Closer must be closed to flush pending writes.
func NewFile(level ports.LogLevel, path string, maxSizeMB int) (*ConsoleLogger, io.Closer) {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
	}

	l := NewConsoleTo(level, lj, lj)
	l.stamp = true
	return l, lj
}
