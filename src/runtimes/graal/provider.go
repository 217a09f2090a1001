// Package graal implements the GraalVM runtime provider for use.
// GraalVM is selected through java_home exactly like any other JDK; only
// the name and the default version differ.
package graal

import (
	"fmt"

	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/shell"
	"github.com/javax0/use/src/runtimes/java"
)

// Provider implements the runtime.Provider interface for GraalVM
type Provider struct{}

// NewProvider creates a new GraalVM runtime provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the runtime name
func (p *Provider) Name() string {
	return constants.KindGraal
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "GraalVM"
}

// DefaultVersion returns the version selected by a bare "use graal"
func (p *Provider) DefaultVersion() string {
	return constants.DefaultGraalVersion
}

// Export points JAVA_HOME at the requested GraalVM
func (p *Provider) Export(version string, env runtime.Env) shell.Assignment {
	return java.JavaHome(version)
}

func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register GraalVM provider: %v", err))
	}
}
