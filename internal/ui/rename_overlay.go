// The rename modal: a small
// centered box showing the in-progress buffer with a cursor glyph.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// RenameOverlayRect computes the centered rectangle for the rename modal
// within area, mirroring rename_overlay.rs's centered_rect: width is
// min(40, area.Width-4), height is fixed at 3, centered on both axes.
func RenameOverlayRect(area Rect) Rect {
	width := area.Width - 4
	if width > 40 {
		width = 40
	}
	if width < 1 {
		width = 1
	}
	height := 3
	if height > area.Height {
		height = area.Height
	}
	x := area.X + (area.Width-width)/2
	y := area.Y + (area.Height-height)/2
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RenderRenameOverlay paints the modal's content: a bordered box titled
// "Rename Tab" containing the buffer followed by a cursor glyph.
func RenderRenameOverlay(buffer string, width int) string {
	inner := width - 4 // border + padding, matching RenameOverlayBorder
	if inner < 1 {
		inner = 1
	}
	text := buffer + "▏"
	if len(text) > inner {
		text = text[len(text)-inner:]
	}
	box := RenameOverlayBorder.
		Width(inner).
		Render(text)
	title := RenameOverlayTitle.Render(" Rename Tab ")
	return lipgloss.JoinVertical(lipgloss.Center, title, box)
}
