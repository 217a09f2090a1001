package cmd

import (
	"fmt"
	"io"

	"github.com/javax0/use/src/internal/alias"
	"github.com/javax0/use/src/internal/runtime"
	"github.com/javax0/use/src/internal/tui"
)

// printAliases shows the alias table and the runtime kinds on w.
// Aliases that differ from the built-in table are highlighted.
func printAliases(w io.Writer, aliases *alias.Table, reg *runtime.Registry) {
	builtin := alias.Default()

	aliasTable := tui.NewTable("Alias", "Version", "Source")
	aliasTable.SetTitle("Version aliases")
	for _, e := range aliases.Entries() {
		if v, ok := builtin.Lookup(e.Key); ok && v == e.Value {
			aliasTable.AddRow(e.Key, tui.RenderVersion(e.Value), "built-in")
			continue
		}
		aliasTable.AddActiveRow(e.Key, e.Value, "config")
	}
	aliasTable.SetFooter(fmt.Sprintf("%d aliases. Not all versions are available for all programs.", aliases.Len()))
	_, _ = fmt.Fprintln(w, aliasTable.Render())

	kindTable := tui.NewTable("Kind", "Runtime", "Default version")
	kindTable.SetTitle("Runtime kinds")
	for _, p := range reg.GetAll() {
		kindTable.AddRow(tui.RenderRuntime(p.Name()), p.DisplayName(), tui.RenderVersion(p.DefaultVersion()))
	}
	kindTable.SetFooter("Any other first argument is taken as a Java version.")
	_, _ = fmt.Fprintln(w, kindTable.Render())
}
