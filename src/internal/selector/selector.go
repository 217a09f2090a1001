// Package selector turns the arguments of a use invocation into the single
// shell statement that activates the requested runtime version
package selector

import (
	"errors"
	"fmt"

	"github.com/javax0/use/src/internal/alias"
	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/shell"
)

// UsageError is returned when use is invoked without a runtime kind or version
type UsageError struct {
	Usage string // Text to show the user
}

func (e *UsageError) Error() string {
	return "no runtime kind or version given"
}

// Request is a parsed invocation
type Request struct {
	Kind      string // Runtime kind, "java" when the first argument was a version
	Requested string // Version as typed, or the kind's default
	Version   string // Requested after alias resolution
}

// Options carries what an invocation is evaluated against
type Options struct {
	Registry *runtime.Registry
	Aliases  *alias.Table
	Dialect  shell.Dialect
}

// Result is the full observable outcome of an invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Parse interprets args (program name excluded).
// A first argument that is not a registered kind is taken as a Java version.
// Missing versions default per kind, and every version is passed once through
// the alias table. Unknown versions are kept as typed.
func Parse(args []string, reg *runtime.Registry, aliases *alias.Table) (Request, error) {
	if len(args) == 0 {
		return Request{}, &UsageError{Usage: Usage(aliases)}
	}

	req := Request{Kind: args[0]}
	if !reg.Has(req.Kind) {
		req.Requested = req.Kind
		req.Kind = constants.KindJava
	} else if len(args) > 1 {
		req.Requested = args[1]
	} else {
		provider, err := reg.Get(req.Kind)
		if err != nil {
			return Request{}, err
		}
		req.Requested = provider.DefaultVersion()
	}

	req.Version = aliases.Resolve(req.Requested)
	return req, nil
}

// Render returns the statement that activates req in dialect d
func Render(req Request, reg *runtime.Registry, env runtime.Env, d shell.Dialect) (string, error) {
	provider, err := reg.Get(req.Kind)
	if err != nil {
		return "", fmt.Errorf("cannot select %s %s: %w", req.Kind, req.Version, err)
	}
	return d.Render(provider.Export(req.Version, env)), nil
}

// Usage returns the usage text listing every alias of the table
func Usage(aliases *alias.Table) string {
	return fmt.Sprintf("Usage: %s [%s|%s|%s] version\n", constants.BinaryName, constants.KindJava, constants.KindGraal, constants.KindPython) +
		"Version can be: " + aliases.Describe(" ,") + "\n" +
		"Not all versions are available for all programs.\n"
}

// Run evaluates a whole invocation without touching the process.
// Standard output always holds exactly one line: the export statement, or a
// no-op when the invocation is rejected.
func Run(args []string, env runtime.Env, opts Options) Result {
	req, err := Parse(args, opts.Registry, opts.Aliases)
	if err == nil {
		var line string
		line, err = Render(req, opts.Registry, env, opts.Dialect)
		if err == nil {
			return Result{Stdout: line + "\n"}
		}
	}

	res := Result{Stdout: opts.Dialect.Noop() + "\n", ExitCode: 1}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		res.Stderr = usageErr.Usage
	} else {
		res.Stderr = err.Error() + "\n"
	}
	return res
}
