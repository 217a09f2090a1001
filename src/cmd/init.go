package cmd

import (
	"github.com/javax0/use/src/internal/config"
	"github.com/javax0/use/src/internal/path"
	"github.com/javax0/use/src/internal/shell"
	"github.com/javax0/use/src/internal/ui"
)

// wrapperFor picks the dialect of the --init wrapper function: the
// configured shell, or the login shell from $SHELL when none is configured.
// dialect is the already validated configured dialect.
func wrapperFor(cfg *config.Config, dialect shell.Dialect) shell.Dialect {
	if cfg.Shell != "" {
		return dialect
	}

	detected := path.DetectShell()
	d, err := shell.ParseDialect(detected)
	if err != nil {
		ui.Debug("Unrecognized shell %s, using %s syntax", detected, shell.Posix)
		return shell.Posix
	}
	ui.Debug("Detected %s, using %s syntax", ui.Highlight(detected), d)
	return d
}
