// Package ui provides colored console output utilities for user interfaces.
// Everything goes to standard error: standard output belongs to the shell
// statement the caller evaluates.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/javax0/use/src/internal/constants"
)

var (
	// Color functions for different message types
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	debugColor   = color.New(color.FgHiBlack)

	// Symbols
	errorSymbol   = "✗"
	warningSymbol = "⚠"
	infoSymbol    = "→"
	debugSymbol   = "·"

	mu          sync.Mutex
	output      io.Writer = color.Error
	verboseMode bool
)

// SetOutput redirects all messages to w and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := output
	output = w
	return prev
}

// Output returns the writer messages are sent to
func Output() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// SetVerbose enables or disables debug messages
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// IsVerbose reports whether debug messages are printed
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verboseMode
}

// CheckVerboseEnv turns verbose mode on when USE_VERBOSE is "1" or "true"
func CheckVerboseEnv() {
	switch strings.ToLower(os.Getenv(constants.EnvVerbose)) {
	case "1", "true":
		SetVerbose(true)
	}
}

func emit(c *color.Color, symbol, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = c.Fprintf(Output(), "%s %s\n", symbol, message)
}

// Error prints an error message in red with an X
func Error(format string, args ...interface{}) {
	emit(errorColor, errorSymbol, format, args...)
}

// Warning prints a warning message in yellow with a warning symbol
func Warning(format string, args ...interface{}) {
	emit(warningColor, warningSymbol, format, args...)
}

// Info prints an info message in cyan with an arrow
func Info(format string, args ...interface{}) {
	emit(infoColor, infoSymbol, format, args...)
}

// Debug prints a dimmed diagnostic message, only in verbose mode
func Debug(format string, args ...interface{}) {
	if !IsVerbose() {
		return
	}
	emit(debugColor, debugSymbol, format, args...)
}

// Plain prints text as is, without color or symbol
func Plain(text string) {
	_, _ = io.WriteString(Output(), text)
}

// Highlight prints text in a highlighted color (for emphasis)
func Highlight(text string) string {
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// HighlightVersion prints a version string in a highlighted color
func HighlightVersion(version string) string {
	return color.New(color.FgMagenta, color.Bold).Sprint(version)
}
