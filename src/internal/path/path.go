// Package path provides utilities for PATH environment variable manipulation
package path

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/javax0/use/src/internal/constants"
)

// Separator is the PATH list separator used by the shells use emits for
const Separator = ":"

// Segments splits a PATH value into its directories.
// Empty segments are kept, so an empty PATH yields one empty segment.
func Segments(pathEnv string) []string {
	return strings.Split(pathEnv, Separator)
}

// Without removes every segment that starts with prefix and rebuilds the
// rest by prepending a separator to each kept segment, including the first.
// The result is meant to be appended directly after another directory.
func Without(pathEnv, prefix string) string {
	var b strings.Builder
	for _, p := range Segments(pathEnv) {
		if strings.HasPrefix(p, prefix) {
			continue
		}
		b.WriteString(Separator)
		b.WriteString(p)
	}
	return b.String()
}

// CountWithPrefix returns how many segments of pathEnv start with prefix
func CountWithPrefix(pathEnv, prefix string) int {
	count := 0
	for _, p := range Segments(pathEnv) {
		if strings.HasPrefix(p, prefix) {
			count++
		}
	}
	return count
}

// Contains checks if a directory is one of the segments of pathEnv
func Contains(pathEnv, dir string) bool {
	if pathEnv == "" {
		return false
	}

	dir = filepath.Clean(dir)
	for _, p := range Segments(pathEnv) {
		if p == "" {
			continue
		}
		if filepath.Clean(p) == dir {
			return true
		}
	}
	return false
}

// DetectShell returns the user's shell name (bash, zsh, fish, etc.)
func DetectShell() string {
	shell := os.Getenv(constants.EnvShell)
	if shell == "" {
		return "unknown"
	}

	// Extract just the shell name from the path
	return filepath.Base(shell)
}
