package app

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rogerneel/helmux/internal/ui"
)

// Err returns the fatal error that ended the program, if any.
func (m *Model) Err() error { return m.fatalErr }

// Shutdown signals the child multiplexer process. Detaching already told the server to keep running
// without us; otherwise we kill the driver's child process.
func (m *Model) Shutdown() {
	if m.detached {
		return
	}
	_ = m.driver.Kill()
}

// View renders the full screen: sidebar, active tab's viewport, footer,
// and (in rename mode) the centered rename overlay on top.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	area := ui.Rect{Width: m.width, Height: m.height}
	if area.Width == 0 || area.Height == 0 {
		return ""
	}

	sidebarArea := m.layout.SidebarArea()
	viewportArea := m.layout.ViewportArea()

	mode := ui.SidebarNormal
	switch m.input.Mode {
	case ui.ModePrefix:
		mode = ui.SidebarPrefix
	case ui.ModeRename:
		mode = ui.SidebarRename
	}

	sidebarLines := ui.RenderSidebar(m.sidebarTabInfos(), sidebarArea.Width, sidebarArea.Height, sidebarArea.Width <= ui.CollapsedSidebarWidth, mode)

	var viewportText string
	if active := m.registry.Active(); active != nil {
		viewportText = ui.RenderViewport(active.Emulator.Grid(), viewportArea.Width, viewportArea.Height-1)
	}
	viewportLines := strings.Split(viewportText, "\n")

	body := joinSideBySide(sidebarLines, viewportLines, sidebarArea.Width, viewportArea.Width, area.Height-1)

	footer := ui.RenderFooter(m.footerData(), area.Width)

	screen := body + "\n" + footer

	if m.input.Mode == ui.ModeRename {
		rect := ui.RenameOverlayRect(area)
		overlay := ui.RenderRenameOverlay(m.input.RenameBuffer, rect.Width)
		return overlayOnto(screen, overlay, rect)
	}

	return screen
}

func (m *Model) sidebarTabInfos() []ui.TabInfo {
	return lo.FilterMap(m.registry.Order(), func(id string, i int) (ui.TabInfo, bool) {
		t := m.registry.Get(id)
		if t == nil {
			return ui.TabInfo{}, false
		}
		return ui.TabInfo{
			ID:       t.WindowID,
			Name:     t.Name,
			Active:   id == m.registry.ActiveID(),
			Activity: t.Activity,
			Index:    i + 1,
		}, true
	})
}

func (m *Model) footerData() ui.FooterData {
	mode := ui.SidebarNormal
	switch m.input.Mode {
	case ui.ModePrefix:
		mode = ui.SidebarPrefix
	case ui.ModeRename:
		mode = ui.SidebarRename
	}
	activeIdx := 0
	order := m.registry.Order()
	for i, id := range order {
		if id == m.registry.ActiveID() {
			activeIdx = i + 1
			break
		}
	}
	return ui.FooterData{
		SessionName: m.cfg.SessionName,
		TabCount:    m.registry.Len(),
		ActiveIndex: activeIdx,
		Mode:        mode,
		Detached:    m.detached,
	}
}

// joinSideBySide combines sidebar and viewport line slices into a single
// block of exactly height rows, each row "<sidebar><viewport>" padded to
// their respective widths.
func joinSideBySide(left, right []string, leftWidth, rightWidth, height int) string {
	var b strings.Builder
	for r := 0; r < height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(padTo(lineAt(left, r), leftWidth))
		b.WriteString(padTo(lineAt(right, r), rightWidth))
	}
	return b.String()
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func padTo(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// overlayOnto splices overlay's lines into screen at rect's position,
// a plain text composite sufficient for the rename modal (no transparency
// or alpha blending is needed — the overlay is fully opaque).
func overlayOnto(screen, overlay string, rect ui.Rect) string {
	screenLines := strings.Split(screen, "\n")
	overlayLines := strings.Split(overlay, "\n")
	for i, line := range overlayLines {
		row := rect.Y + i
		if row < 0 || row >= len(screenLines) {
			continue
		}
		screenLines[row] = spliceAt(screenLines[row], line, rect.X)
	}
	return strings.Join(screenLines, "\n")
}

func spliceAt(base, insert string, col int) string {
	baseRunes := []rune(base)
	insertRunes := []rune(insert)
	for len(baseRunes) < col+len(insertRunes) {
		baseRunes = append(baseRunes, ' ')
	}
	copy(baseRunes[col:], insertRunes)
	return string(baseRunes)
}
