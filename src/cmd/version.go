package cmd

import (
	"fmt"
	"io"

	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/tui"
)

// Version can be set at build time using ldflags
var Version = "dev"

// printVersion shows the use version on w
func printVersion(w io.Writer) {
	content := fmt.Sprintf("%s %s", constants.BinaryName, tui.RenderVersion(Version))
	_, _ = fmt.Fprintln(w, tui.RenderInfoBox(content))
}
