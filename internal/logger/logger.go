// Package logger provides levelled logging for specxtract.
// Debug, Info and Section messages are printed only in verbose mode
// (--verbose); warnings and errors are always printed. Output goes to
// stderr so that it never mixes with tuples written to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if always || verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message in verbose mode.
func Debug(format string, args ...any) {
	write(false, "[DEBUG] ", format, args...)
}

// Info prints a message in verbose mode.
func Info(format string, args ...any) {
	write(false, "[INFO] ", format, args...)
}

// Section prints a section header in verbose mode.
func Section(name string) {
	write(false, "\n=== ", "%s ===", name)
}

// Warn prints a warning.
func Warn(format string, args ...any) {
	write(true, "[WARN] ", format, args...)
}

// Error prints an error.
func Error(format string, args ...any) {
	write(true, "[ERROR] ", format, args...)
}
