// Package tui provides styled console output using lipgloss for the
// informational screens (alias list, version, help).
package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Lazy initialization to avoid cold start penalty from lipgloss terminal detection
var (
	initOnce sync.Once

	// Colors
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorSuccess   lipgloss.Color
	colorMuted     lipgloss.Color

	// Text styles
	StyleTitle   lipgloss.Style
	StyleVersion lipgloss.Style
	StyleRuntime lipgloss.Style
	StyleMuted   lipgloss.Style

	// Box styles
	StyleInfoBox lipgloss.Style

	// Table styles
	StyleTableHeader    lipgloss.Style
	StyleTableCell      lipgloss.Style
	StyleTableRowActive lipgloss.Style
	StyleTableBorder    lipgloss.Style
)

// initStyles initializes all lipgloss styles lazily
func initStyles() {
	initOnce.Do(func() {
		// Output is read on stderr of an interactive terminal; skip probing it
		lipgloss.SetColorProfile(termenv.ANSI256)

		// Color palette
		colorPrimary = lipgloss.Color("39")    // Cyan
		colorSecondary = lipgloss.Color("213") // Magenta/Pink
		colorSuccess = lipgloss.Color("42")    // Green
		colorMuted = lipgloss.Color("245")     // Gray

		StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleVersion = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

		StyleRuntime = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

		StyleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

		StyleInfoBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

		StyleTableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingRight(2)

		StyleTableCell = lipgloss.NewStyle().
			PaddingRight(2)

		StyleTableRowActive = lipgloss.NewStyle().
			Foreground(colorSuccess)

		StyleTableBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	})
}

// RenderTitle renders a styled title
func RenderTitle(text string) string {
	initStyles()
	return StyleTitle.Render(text)
}

// RenderRuntime renders a runtime name with styling
func RenderRuntime(name string) string {
	initStyles()
	return StyleRuntime.Render(name)
}

// RenderVersion renders a version string with styling
func RenderVersion(version string) string {
	initStyles()
	return StyleVersion.Render(version)
}

// RenderMuted renders text in a muted/dim style
func RenderMuted(text string) string {
	initStyles()
	return StyleMuted.Render(text)
}

// RenderInfoBox renders content in an info-styled box
func RenderInfoBox(content string) string {
	initStyles()
	return StyleInfoBox.Render(content)
}
