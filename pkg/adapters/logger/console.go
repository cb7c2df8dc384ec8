// Package logger provides logging implementations.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/user/placeholder/pkg/ports"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGray   = "\033[90m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// ConsoleLogger writes translated messages line by line.
// Debug and Info go to out, Warn and Error go to errOut.
type ConsoleLogger struct {
	level     ports.LogLevel
	component string
	color     bool
	stamp     bool

	mu     *sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a console logger on stdout and stderr.
// Color output is enabled when stdout is a terminal.
func NewConsole(level ports.LogLevel) *ConsoleLogger {
	l := NewConsoleTo(level, colorable.NewColorableStdout(), colorable.NewColorableStderr())
	l.color = isTerminal(os.Stdout)
	return l
}

// NewConsoleTo creates a console logger on the given writers.
// Color is only used when out is a terminal.
func NewConsoleTo(level ports.LogLevel, out, errOut io.Writer) *ConsoleLogger {
	return &ConsoleLogger{
		level:  level,
		color:  isTerminal(out),
		mu:     &sync.Mutex{},
		out:    out,
		errOut: errOut,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(ports.LevelDebug, msg, args...)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(ports.LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(ports.LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(ports.LevelError, msg, args...)
}

// WithComponent returns a logger sharing the same writers that prefixes
// messages with the component name.
func (l *ConsoleLogger) WithComponent(component string) ports.Logger {
	child := *l
	child.component = component
	return &child
}

func (l *ConsoleLogger) log(level ports.LogLevel, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	line := l10n.F(msg, args...)
	if l.component != "" {
		if l.color {
			line = fmt.Sprintf("%s[%s]%s %s", colorCyan, l.component, colorReset, line)
		} else {
			line = fmt.Sprintf("[%s] %s", l.component, line)
		}
	}
	if l.stamp {
		line = fmt.Sprintf("%s %-5s %s", time.Now().Format(time.RFC3339), levelName(level), line)
	}

	if l.color {
		switch level {
		case ports.LevelDebug:
			line = colorGray + line + colorReset
		case ports.LevelWarn:
			line = colorYellow + line + colorReset
		case ports.LevelError:
			line = colorRed + line + colorReset
		}
	}

	w := l.out
	if level >= ports.LevelWarn {
		w = l.errOut
	}

	// Compose runs on several workers; keep lines whole.
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(w, line)
}

func levelName(level ports.LogLevel) string {
	switch level {
	case ports.LevelDebug:
		return "DEBUG"
	case ports.LevelInfo:
		return "INFO"
	case ports.LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

var _ ports.Logger = (*ConsoleLogger)(nil)
