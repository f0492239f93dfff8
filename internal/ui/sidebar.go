package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

// TabInfo is the sidebar's read-only snapshot of one registry tab.
type TabInfo struct {
	ID       string
	Name     string
	Active   bool
	Activity bool
	Index    int // 1-based
}

// SidebarMode mirrors the prefix-key modal state, surfaced here only to
// pick the mode-indicator header row.
type SidebarMode int

const (
	SidebarNormal SidebarMode = iota
	SidebarPrefix
	SidebarRename
)

// RenderSidebar paints the tab list into a width x height block of text
// lines (one string per row): indicator glyph, index, and name, plus a
// collapsed-row format and a mode-indicator header row.
func RenderSidebar(tabs []TabInfo, width, height int, collapsed bool, mode SidebarMode) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	lines := make([]string, 0, height)

	headerRows := 0
	if mode != SidebarNormal {
		lines = append(lines, renderModeIndicator(mode, width))
		headerRows = 1
	}

	bodyHeight := height - headerRows - 1 // reserve the [+] button row
	for i, t := range tabs {
		if i >= bodyHeight {
			break
		}
		if collapsed {
			lines = append(lines, renderCollapsedRow(t, width))
		} else {
			lines = append(lines, renderExpandedRow(t, width))
		}
	}
	for len(lines) < headerRows+bodyHeight {
		lines = append(lines, SidebarRowNormal.Width(width).Render(""))
	}

	lines = append(lines, renderNewTabButton(width))
	return lines
}

func renderModeIndicator(mode SidebarMode, width int) string {
	var style = SidebarModeIndicator
	var text string
	switch mode {
	case SidebarPrefix:
		text = "^B"
		if width >= 10 {
			text = "-- ^B --"
		}
	case SidebarRename:
		style = SidebarRenameIndicator
		text = "REN"
		if width >= 10 {
			text = "RENAME"
		}
	}
	return style.Width(width).Render(text)
}

func indicatorGlyph(t TabInfo) string {
	switch {
	case t.Active:
		return "●" // ●
	case t.Activity:
		return "*"
	default:
		return " "
	}
}

func rowStyle(t TabInfo) lipgloss.Style {
	switch {
	case t.Active:
		return SidebarRowActive
	case t.Activity:
		return SidebarRowActivity
	default:
		return SidebarRowNormal
	}
}

func renderCollapsedRow(t TabInfo, width int) string {
	text := fmt.Sprintf("%s%d", indicatorGlyph(t), t.Index)
	text = truncateToWidth(text, width)
	return rowStyle(t).Width(width).Render(text)
}

func renderExpandedRow(t TabInfo, width int) string {
	text := fmt.Sprintf("%s %d: %s", indicatorGlyph(t), t.Index, t.Name)
	text = truncateToWidth(text, width)
	return rowStyle(t).Width(width).Render(text)
}

func renderNewTabButton(width int) string {
	text := "[+]"
	if width >= 9 {
		text = "[+] New"
	}
	return SidebarNewTab.Width(width).Render(text)
}

// truncateToWidth truncates s to fit within max display columns
// (ANSI-width aware via muesli/ansi), appending "..." when truncated.
func truncateToWidth(s string, max int) string {
	if ansi.PrintableRuneWidth(s) <= max {
		return s
	}
	if max >= 3 {
		runes := []rune(s)
		for n := len(runes); n > 0; n-- {
			cand := string(runes[:n]) + "..."
			if ansi.PrintableRuneWidth(cand) <= max {
				return cand
			}
		}
		return "..."
	}
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes)
}

// RowToTabIndex maps a sidebar click row to a 0-based tab index. headerRows
// is 0 in normal mode, 1 in prefix/rename mode.
func RowToTabIndex(row, numTabs, areaHeight, headerRows int) (int, bool) {
	if row < headerRows {
		return 0, false
	}
	adjusted := row - headerRows
	if row >= areaHeight-1 {
		return 0, false
	}
	if adjusted < numTabs {
		return adjusted, true
	}
	return 0, false
}

// IsNewTabButtonRow reports whether row is the sidebar's [+] button row.
func IsNewTabButtonRow(row, areaHeight int) bool {
	return row == areaHeight-1
}
