// Package python implements the Python runtime provider for use
package python

import (
	"fmt"

	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/path"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/shell"
)

// Provider implements the runtime.Provider interface for Python framework builds
type Provider struct{}

// NewProvider creates a new Python runtime provider
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the runtime name
func (p *Provider) Name() string {
	return constants.KindPython
}

// DisplayName returns the human-readable name
func (p *Provider) DisplayName() string {
	return "Python"
}

// DefaultVersion returns the version selected by a bare "use python"
func (p *Provider) DefaultVersion() string {
	return constants.DefaultPythonVersion
}

// BinDir returns the framework bin directory of version
func BinDir(version string) string {
	return constants.PythonFrameworkRoot + version + constants.PythonBinSuffix
}

// Export puts the framework bin directory of version in front of PATH and
// drops every other framework Python from it.
// The remaining segments are appended with a leading separator each, so the
// value contains an empty segment right after the bin directory.
func (p *Provider) Export(version string, env runtime.Env) shell.Assignment {
	return shell.Assignment{
		Name:     constants.EnvPath,
		Value:    BinDir(version) + path.Without(env.Path, constants.PythonFrameworkRoot),
		PathList: true,
	}
}

func init() {
	if err := runtime.Register(NewProvider()); err != nil {
		panic(fmt.Sprintf("failed to register Python provider: %v", err))
	}
}
