package shell

import (
	"strings"
	"testing"

	"mvdan.cc/sh/v3/syntax"
)

// parseStatements parses script as POSIX shell and returns its statements
func parseStatements(t *testing.T, script string) []*syntax.Stmt {
	t.Helper()

	file, err := syntax.NewParser(syntax.Variant(syntax.LangPOSIX)).Parse(strings.NewReader(script), "emitted")
	if err != nil {
		t.Fatalf("emitted line %q does not parse: %v", script, err)
	}
	return file.Stmts
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Dialect
		expectError bool
	}{
		{name: "empty selects posix", input: "", expected: Posix},
		{name: "posix", input: "posix", expected: Posix},
		{name: "bash", input: "bash", expected: Posix},
		{name: "zsh upper case", input: "ZSH", expected: Posix},
		{name: "fish", input: "fish", expected: Fish},
		{name: "fish with spaces", input: " fish ", expected: Fish},
		{name: "unsupported", input: "powershell", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDialect(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseDialect(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDialect(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDialect(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRender_Posix(t *testing.T) {
	tests := []struct {
		name     string
		a        Assignment
		expected string
	}{
		{
			name:     "command substitution",
			a:        Assignment{Name: "JAVA_HOME", Value: "/usr/libexec/java_home -v 1.8", Command: true},
			expected: "export JAVA_HOME=$(/usr/libexec/java_home -v 1.8)",
		},
		{
			name:     "path list is emitted verbatim",
			a:        Assignment{Name: "PATH", Value: "/x/3.8/bin:/a:/b", PathList: true},
			expected: "export PATH=/x/3.8/bin:/a:/b",
		},
		{
			name:     "literal",
			a:        Assignment{Name: "FOO", Value: "bar"},
			expected: "export FOO=bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Posix.Render(tt.a)
			if got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
			if stmts := parseStatements(t, got); len(stmts) != 1 {
				t.Errorf("Render() produced %d statements, want 1", len(stmts))
			}
		})
	}
}

func TestRender_Fish(t *testing.T) {
	tests := []struct {
		name     string
		a        Assignment
		expected string
	}{
		{
			name:     "command substitution",
			a:        Assignment{Name: "JAVA_HOME", Value: "/usr/libexec/java_home -v 14", Command: true},
			expected: "set -gx JAVA_HOME (/usr/libexec/java_home -v 14)",
		},
		{
			name:     "path list split into arguments",
			a:        Assignment{Name: "PATH", Value: "/x/3.8/bin::/a:/b", PathList: true},
			expected: "set -gx PATH /x/3.8/bin /a /b",
		},
		{
			name:     "literal",
			a:        Assignment{Name: "FOO", Value: "bar"},
			expected: "set -gx FOO bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fish.Render(tt.a); got != tt.expected {
				t.Errorf("Render() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNoop(t *testing.T) {
	for _, d := range []Dialect{Posix, Fish} {
		if got := d.Noop(); got != "echo " {
			t.Errorf("%s.Noop() = %q, want \"echo \"", d, got)
		}
	}
	parseStatements(t, Posix.Noop())
}

func TestWrapper(t *testing.T) {
	t.Run("posix", func(t *testing.T) {
		got := Posix.Wrapper("use")
		want := `use() { eval "$(command use "$@")"; }`
		if got != want {
			t.Errorf("Wrapper() = %q, want %q", got, want)
		}

		stmts := parseStatements(t, got)
		if len(stmts) != 1 {
			t.Fatalf("Wrapper() produced %d statements, want 1", len(stmts))
		}
		if _, ok := stmts[0].Cmd.(*syntax.FuncDecl); !ok {
			t.Errorf("Wrapper() statement is %T, want a function declaration", stmts[0].Cmd)
		}
	})

	t.Run("fish", func(t *testing.T) {
		got := Fish.Wrapper("use")
		if !strings.HasPrefix(got, "function use;") || !strings.Contains(got, "command use $argv") {
			t.Errorf("Wrapper() = %q, not a fish function wrapping use", got)
		}
	})
}
