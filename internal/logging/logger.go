// Package logging provides the leveled, optionally colored console logger
// shared by the CLI and the batch runner.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ANSI colors (empty when disabled)
var (
	red    = ""
	green  = ""
	yellow = ""
	blue   = ""
	cyan   = ""
	nc     = ""
)

// Logger writes leveled lines to stdout, errors to stderr.
type Logger struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// New returns a logger writing to the standard streams. Color is enabled
// when stdout is a terminal, NO_COLOR is unset, and TERM is not "dumb".
func New(verbose bool) *Logger {
	enable := term.IsTerminal(int(os.Stdout.Fd())) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
	if enable {
		red = "\033[1;91m"
		green = "\033[1;92m"
		yellow = "\033[1;93m"
		blue = "\033[1;94m"
		cyan = "\033[1;96m"
		nc = "\033[0m"
	} else {
		red, green, yellow, blue, cyan, nc = "", "", "", "", "", ""
	}
	return &Logger{verbose: verbose, out: os.Stdout, errOut: os.Stderr}
}

func (l *Logger) line(w io.Writer, level, color, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if color != "" {
		fmt.Fprintf(w, "%s[%s]%s %s\n", color, level, nc, text)
	} else {
		fmt.Fprintf(w, "[%s] %s\n", level, text)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(l.out, "INFO", blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(l.out, "OK", green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(l.out, "WARN", yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red) to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(l.errOut, "ERROR", red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line(l.out, "DEBUG", cyan, fmt.Sprintf(format, args...))
}
