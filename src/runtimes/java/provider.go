// Package java implements the Java runtime provider for use
package java

import (
	"fmt"

	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/shell"
)

// Provider implements the runtime.Provider interface for Java
type Provider struct{}

// NewProvider creates a new Java runtime provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the runtime name
func (p *Provider) Name() string {
	return constants.KindJava
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "Java"
}

// DefaultVersion returns the version selected by a bare "use java"
func (p *Provider) DefaultVersion() string {
	return constants.DefaultJavaVersion
}

// Export points JAVA_HOME at whatever java_home reports for version
func (p *Provider) Export(version string, env runtime.Env) shell.Assignment {
	return JavaHome(version)
}

// JavaHome returns the JAVA_HOME assignment shared by every JDK flavour.
// java_home is run by the evaluating shell, not by use.
func JavaHome(version string) shell.Assignment {
	return shell.Assignment{
		Name:    constants.EnvJavaHome,
		Value:   constants.JavaHomeCommand + version,
		Command: true,
	}
}

func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register Java provider: %v", err))
	}
}
