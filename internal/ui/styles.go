// Package ui implements the external collaborators: layout/hit-test,
// sidebar paint, key/mouse translation, the footer, and the rename
// overlay.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBG        = lipgloss.Color("#1E1E2E")
	ColorSurface   = lipgloss.Color("#313244")
	ColorText      = lipgloss.Color("#CDD6F4")
	ColorTextDim   = lipgloss.Color("#6C7086")
	ColorBorder    = lipgloss.Color("#45475A")
	ColorHighlight = lipgloss.Color("#F5C2E7")
)

var (
	SidebarStyle = lipgloss.NewStyle().
			Background(ColorSurface)

	SidebarBorder = lipgloss.NewStyle().
			Foreground(ColorBorder)

	SidebarRowActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ColorPrimary)

	SidebarRowActivity = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Background(ColorSurface)

	SidebarRowNormal = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSurface)

	SidebarNewTab = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Background(ColorSurface)

	SidebarModeIndicator = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBG).
				Background(ColorWarning)

	SidebarRenameIndicator = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorBG).
				Background(ColorSecondary)
)

var (
	FooterStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

var (
	RenameOverlayBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorSecondary).
				Padding(0, 1)

	RenameOverlayTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary)
)
