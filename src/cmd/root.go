// Package cmd implements the CLI for use
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/javax0/use/src/internal/alias"
	"github.com/javax0/use/src/internal/config"
	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/path"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/selector"
	"github.com/javax0/use/src/internal/shell"
	"github.com/javax0/use/src/internal/tui"
	"github.com/javax0/use/src/internal/ui"
	"github.com/javax0/use/src/runtimes/python"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootOptions holds the flags of one invocation
type rootOptions struct {
	configPath  string
	list        bool
	printInit   bool
	showVersion bool
}

// exitError carries a non-zero exit status whose output was already written
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs use with the process arguments and exits with its status
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the exit status.
// stdout receives exactly one line of shell script on every path.
func run(args []string, stdout, stderr io.Writer) int {
	prev := ui.SetOutput(stderr)
	defer ui.SetOutput(prev)
	defer ui.SetVerbose(false)

	ui.CheckVerboseEnv()

	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(separatePositionals(rootCmd.Flags(), args))
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Flag errors and the like: nothing was printed on stdout yet
	ui.Error("%v", err)
	ui.Info("Run '%s --help' for usage", constants.BinaryName)
	writeLine(stdout, shell.Posix.Noop())
	return 1
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   constants.BinaryName + " [java|graal|python] [version]",
		Short: "Select the active Java or Python version",
		Long: `Print a shell statement that selects an installed Java, GraalVM or Python version.

Evaluate the output in the current shell, or install the wrapper function:
  eval "$(use --init)"

Examples:
  use java 8       # JAVA_HOME for Java 1.8
  use 11           # same as: use java 11
  use graal        # JAVA_HOME for GraalVM 11.0.6
  use python 3.8   # framework Python 3.8 first on PATH`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUse(cmd, args, opts, stdout)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)
	flags.String(config.KeyShell, "", "Shell dialect of the printed statement (posix, bash, zsh, fish)")
	flags.Bool(config.KeyVerbose, false, "Enable verbose output for debugging (on stderr)")
	flags.StringVar(&opts.configPath, "config", "", "Read settings from this TOML file")
	flags.BoolVar(&opts.list, "list", false, "Show the version aliases and runtime kinds")
	flags.BoolVar(&opts.printInit, "init", false, "Print a shell function that evaluates use automatically")
	flags.BoolVar(&opts.showVersion, "version", false, "Show the use version")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		_ = customUsage(cmd)
		writeLine(stdout, shell.Posix.Noop())
	})

	return rootCmd
}

func runUse(cmd *cobra.Command, args []string, opts *rootOptions, stdout io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		ui.SetVerbose(true)
	}

	dialect, err := cfg.Dialect()
	if err != nil {
		return err
	}

	aliases := alias.Default()
	if len(cfg.Aliases) > 0 {
		aliases = aliases.Merge(cfg.Aliases)
		ui.Debug("Loaded %d configured aliases", len(cfg.Aliases))
	}

	switch {
	case opts.showVersion:
		printVersion(cmd.ErrOrStderr())
		writeLine(stdout, dialect.Noop())
		return nil
	case opts.list:
		printAliases(cmd.ErrOrStderr(), aliases, runtime.GetRegistry())
		writeLine(stdout, dialect.Noop())
		return nil
	case opts.printInit:
		writeLine(stdout, wrapperFor(cfg, dialect).Wrapper(constants.BinaryName))
		return nil
	}

	env := runtime.Env{Path: os.Getenv(constants.EnvPath)}
	selectorOpts := selector.Options{
		Registry: runtime.GetRegistry(),
		Aliases:  aliases,
		Dialect:  dialect,
	}

	if ui.IsVerbose() {
		debugRequest(args, env, selectorOpts)
	}

	res := selector.Run(args, env, selectorOpts)
	_, _ = io.WriteString(stdout, res.Stdout)
	if res.Stderr != "" {
		ui.Plain(res.Stderr)
	}
	if res.ExitCode != 0 {
		return &exitError{code: res.ExitCode}
	}
	return nil
}

// loadConfig resolves settings. A broken user config file only produces a
// warning, while an explicit --config or --shell that cannot be used is an error.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, cfgPath, err := config.Load(config.LoadOptions{
		ConfigFilePath: opts.configPath,
		Flags:          cmd.Flags(),
	})
	if err == nil {
		if cfgPath != "" {
			ui.Debug("Using config file %s", cfgPath)
		}
		return cfg, nil
	}

	if opts.configPath != "" || cmd.Flags().Changed(config.KeyShell) {
		return nil, err
	}

	ui.Warning("Ignoring configuration: %v", err)
	defaults := config.DefaultConfig()
	if verbose, ferr := cmd.Flags().GetBool(config.KeyVerbose); ferr == nil && verbose {
		defaults.Verbose = true
	}
	return &defaults, nil
}

// debugRequest explains in verbose mode how args are going to be interpreted
func debugRequest(args []string, env runtime.Env, opts selector.Options) {
	req, err := selector.Parse(args, opts.Registry, opts.Aliases)
	if err != nil {
		ui.Debug("No runtime kind or version given")
		return
	}

	if req.Requested == req.Version {
		ui.Debug("Selecting %s %s", req.Kind, ui.HighlightVersion(req.Version))
	} else {
		ui.Debug("Selecting %s %s (alias %s)", req.Kind, ui.HighlightVersion(req.Version), req.Requested)
	}

	if req.Kind == constants.KindPython {
		dropped := path.CountWithPrefix(env.Path, constants.PythonFrameworkRoot)
		ui.Debug("Dropping %d framework Python entries from %s", dropped, constants.EnvPath)
		if binDir := python.BinDir(req.Version); path.Contains(env.Path, binDir) {
			ui.Debug("%s is already on %s, moving it to the front", binDir, constants.EnvPath)
		}
	}
	ui.Debug("Emitting %s syntax", opts.Dialect)
}

// separatePositionals inserts "--" before the first token that is not one of
// the flags in fs. Everything from there on is a kind or a version, so cobra
// must neither parse it as a flag nor dispatch it to a hidden subcommand.
func separatePositionals(fs *pflag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		f, known, inline := lookupFlag(fs, args[i])
		if !known {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if f != nil && f.NoOptDefVal == "" && !inline {
			i++ // value of the flag
		}
	}
	return args
}

// lookupFlag resolves a token such as "--shell", "--shell=fish" or "-h".
// The help flag is known even though cobra only adds it when executing.
func lookupFlag(fs *pflag.FlagSet, token string) (f *pflag.Flag, known, inline bool) {
	switch {
	case token == "--":
		return nil, false, false
	case strings.HasPrefix(token, "--"):
		name, _, hasValue := strings.Cut(token[2:], "=")
		if name == "help" {
			return nil, true, hasValue
		}
		f = fs.Lookup(name)
		return f, f != nil, hasValue
	case len(token) == 2 && token[0] == '-':
		if token[1] == 'h' {
			return nil, true, false
		}
		f = fs.ShorthandLookup(token[1:])
		return f, f != nil, false
	}
	return nil, false, false
}

func customUsage(cmd *cobra.Command) error {
	const tableWidth = 78
	w := cmd.ErrOrStderr()

	headerTable := tui.NewTable("")
	headerTable.SetTitle(cmd.Short)
	headerTable.HideHeader()
	headerTable.SetMinWidth(tableWidth)
	for _, line := range strings.Split(cmd.Long, "\n") {
		headerTable.AddRow(line)
	}
	_, _ = fmt.Fprintln(w, headerTable.Render())

	flagsTable := tui.NewTable("Flag", "Description")
	flagsTable.SetTitle("Flags")
	flagsTable.SetMinWidth(tableWidth)
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagsTable.AddRow("--"+f.Name, f.Usage)
	})
	_, _ = fmt.Fprintln(w, flagsTable.Render())

	return nil
}

func writeLine(w io.Writer, line string) {
	_, _ = fmt.Fprintln(w, line)
}
