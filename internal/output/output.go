// Package output handles CLI output formatting for goaliefix.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Config holds output configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	IsTTY     bool      // Whether output is a terminal
}

// Output handles formatted output with verbose support.
type Output struct {
	config Config
}

// New creates a new Output instance with the given configuration.
func New(config Config) *Output {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}
	return &Output{config: config}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	return Config{
		Verbose:   false,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
	}
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	fmt.Fprint(o.config.Writer, terminated(format, args...))
}

// Info prints an informational message (always shown).
func (o *Output) Info(format string, args ...interface{}) {
	fmt.Fprint(o.config.Writer, terminated(format, args...))
}

// Error prints an error message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	fmt.Fprint(o.config.ErrWriter, terminated(format, args...))
}

// Result prints a per-file outcome line. On a terminal the line gets a
// status marker; redirected output stays plain and grep-friendly.
// Failures go to the error writer.
func (o *Output) Result(ok bool, format string, args ...interface{}) {
	msg := terminated(format, args...)
	if o.config.IsTTY {
		if ok {
			msg = "✓ " + msg
		} else {
			msg = "✗ " + msg
		}
	}
	if ok {
		fmt.Fprint(o.config.Writer, msg)
		return
	}
	fmt.Fprint(o.config.ErrWriter, msg)
}

func terminated(format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	return msg
}
