// Package shell renders environment assignments as one line of shell script
// for the shell that will evaluate the output of use
package shell

import (
	"fmt"
	"strings"

	"github.com/javax0/use/src/internal/constants"
)

// Dialect is a family of shells that share the same assignment syntax
type Dialect string

const (
	// Posix covers sh, bash, zsh and friends
	Posix Dialect = constants.ShellPosix
	// Fish is the fish shell
	Fish Dialect = constants.ShellFish
)

// Assignment describes one exported environment variable
type Assignment struct {
	Name  string // Variable name (e.g., "JAVA_HOME", "PATH")
	Value string // Literal value, or the command line when Command is set

	// Command marks Value as a command whose output becomes the value
	Command bool

	// PathList marks Value as a colon-separated directory list
	PathList bool
}

// ParseDialect maps a shell name to its dialect.
// An empty name selects Posix.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", constants.ShellPosix, "sh", constants.ShellBash, constants.ShellZsh, "ksh", "dash":
		return Posix, nil
	case constants.ShellFish:
		return Fish, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: %s, %s)", name, Posix, Fish)
	}
}

// Render returns the statement that exports a in this dialect
func (d Dialect) Render(a Assignment) string {
	if d == Fish {
		return renderFish(a)
	}
	return renderPosix(a)
}

func renderPosix(a Assignment) string {
	if a.Command {
		return "export " + a.Name + "=$(" + a.Value + ")"
	}
	return "export " + a.Name + "=" + a.Value
}

func renderFish(a Assignment) string {
	if a.Command {
		return "set -gx " + a.Name + " (" + a.Value + ")"
	}
	if a.PathList {
		// fish keeps PATH as a list, one argument per directory
		var dirs []string
		for _, dir := range strings.Split(a.Value, ":") {
			if dir != "" {
				dirs = append(dirs, dir)
			}
		}
		return "set -gx " + a.Name + " " + strings.Join(dirs, " ")
	}
	return "set -gx " + a.Name + " " + a.Value
}

// Noop returns a statement that does nothing when evaluated
func (d Dialect) Noop() string {
	return "echo "
}

// Wrapper returns a one-line shell function named after bin that evaluates
// the output of bin, so calling it switches the runtime in the current shell
func (d Dialect) Wrapper(bin string) string {
	if d == Fish {
		return fmt.Sprintf("function %s; eval (command %s $argv); end", bin, bin)
	}
	return fmt.Sprintf(`%s() { eval "$(command %s "$@")"; }`, bin, bin)
}

// String returns the dialect name
func (d Dialect) String() string {
	return string(d)
}
