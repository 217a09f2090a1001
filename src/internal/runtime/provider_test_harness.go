package runtime

import (
	"strings"
	"testing"

	"github.com/javax0/use/src/internal/shell"
)

// ProviderTestHarness runs a suite of contract tests against a Provider implementation
// This ensures all providers behave consistently and implement the interface correctly
type ProviderTestHarness struct {
	Provider Provider
	T        *testing.T

	// Expected values for validation
	ExpectedName           string
	ExpectedDisplayName    string
	ExpectedDefaultVersion string
	ExpectedVariable       string // Variable the provider exports (e.g., "JAVA_HOME")
	SampleVersion          string // A canonical version string for this runtime (e.g., "1.8")
}

// RunAllTests executes the complete test suite
func (h *ProviderTestHarness) RunAllTests() {
	h.T.Run("Name", func(t *testing.T) { h.TestName(t) })
	h.T.Run("DisplayName", func(t *testing.T) { h.TestDisplayName(t) })
	h.T.Run("DefaultVersion", func(t *testing.T) { h.TestDefaultVersion(t) })
	h.T.Run("Export", func(t *testing.T) { h.TestExport(t) })
	h.T.Run("ExportEmptyPath", func(t *testing.T) { h.TestExportEmptyPath(t) })
	h.T.Run("ExportRendersSingleLine", func(t *testing.T) { h.TestExportRendersSingleLine(t) })
}

// TestName verifies the provider returns the expected name
func (h *ProviderTestHarness) TestName(t *testing.T) {
	name := h.Provider.Name()

	if name == "" {
		t.Error("Name() returned empty string")
	}

	if name != h.ExpectedName {
		t.Errorf("Name() = %q, want %q", name, h.ExpectedName)
	}

	// Name is typed on the command line, keep it lowercase
	if name != strings.ToLower(name) {
		t.Errorf("Name() = %q should be lowercase", name)
	}
}

// TestDisplayName verifies the provider returns a human-readable name
func (h *ProviderTestHarness) TestDisplayName(t *testing.T) {
	displayName := h.Provider.DisplayName()

	if displayName == "" {
		t.Error("DisplayName() returned empty string")
	}

	if displayName != h.ExpectedDisplayName {
		t.Errorf("DisplayName() = %q, want %q", displayName, h.ExpectedDisplayName)
	}
}

// TestDefaultVersion verifies the version used when none is given
func (h *ProviderTestHarness) TestDefaultVersion(t *testing.T) {
	if got := h.Provider.DefaultVersion(); got != h.ExpectedDefaultVersion {
		t.Errorf("DefaultVersion() = %q, want %q", got, h.ExpectedDefaultVersion)
	}
}

// TestExport verifies the assignment names the expected variable and carries the version
func (h *ProviderTestHarness) TestExport(t *testing.T) {
	if h.SampleVersion == "" {
		t.Skip("No sample version provided")
	}

	a := h.Provider.Export(h.SampleVersion, Env{Path: "/usr/bin:/bin"})

	if a.Name != h.ExpectedVariable {
		t.Errorf("Export().Name = %q, want %q", a.Name, h.ExpectedVariable)
	}

	if !strings.Contains(a.Value, h.SampleVersion) {
		t.Errorf("Export().Value = %q does not contain version %q", a.Value, h.SampleVersion)
	}
}

// TestExportEmptyPath verifies an empty PATH is tolerated
func (h *ProviderTestHarness) TestExportEmptyPath(t *testing.T) {
	a := h.Provider.Export(h.Provider.DefaultVersion(), Env{})

	if a.Name == "" {
		t.Error("Export() with empty PATH returned an assignment without a name")
	}
}

// TestExportRendersSingleLine verifies every dialect renders the assignment on one line
func (h *ProviderTestHarness) TestExportRendersSingleLine(t *testing.T) {
	a := h.Provider.Export(h.Provider.DefaultVersion(), Env{Path: "/usr/bin"})

	for _, d := range []shell.Dialect{shell.Posix, shell.Fish} {
		line := d.Render(a)
		if line == "" {
			t.Errorf("%s.Render() returned empty string", d)
		}
		if strings.Contains(line, "\n") {
			t.Errorf("%s.Render() = %q spans more than one line", d, line)
		}
	}
}
