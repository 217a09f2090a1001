// Package runtime defines the provider interface and registry for runtime selectors
package runtime

import "github.com/javax0/use/src/internal/shell"

// Env is the part of the caller's environment a provider may read
type Env struct {
	Path string // Current PATH value
}

// Provider defines the interface that all runtime providers must implement
type Provider interface {
	// Name returns the runtime kind as typed on the command line (e.g., "java", "python")
	Name() string

	// DisplayName returns a human-readable name (e.g., "Java", "GraalVM", "Python")
	DisplayName() string

	// DefaultVersion returns the version used when the kind is given without one
	DefaultVersion() string

	// Export returns the environment assignment that activates version.
	// The version has already been resolved through the alias table and is
	// not checked for existence on disk.
	Export(version string, env Env) shell.Assignment
}
