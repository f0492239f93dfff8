// Viewport paint renders the active tab's emulator grid verbatim into the
// main viewport rectangle, resolving each cell's pen to a lipgloss-styled
// run of text.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rogerneel/helmux/internal/vt"
)

// defaultFG and defaultBG anchor ColorDefault resolution for viewport
// cells — the conventional white-on-black terminal default.
var (
	defaultFG = [3]uint8{229, 229, 229}
	defaultBG = [3]uint8{0, 0, 0}
)

// colorProfile is the host terminal's detected color capability. Every
// resolved pen colour is downgraded to this profile before it reaches
// lipgloss, so a 256-colour or plain ANSI host never receives a truecolor
// escape it can't render.
var colorProfile = termenv.ANSI256

// SetColorProfile overrides the host terminal color profile used to
// downgrade resolved pen colours.
func SetColorProfile(p termenv.Profile) { colorProfile = p }

// downgrade converts a "#rrggbb" truecolor string to whatever colorProfile
// supports — an ANSI256 index, a 16-color ANSI index, or the hex string
// unchanged on a truecolor host — returning a string ready for
// lipgloss.Color.
func downgrade(hex string) string {
	return colorProfile.Color(hex).String()
}

// RenderViewport paints height rows of width columns from grid, starting
// at grid row/col (0,0), into a single newline-joined string suitable for
// placement at the viewport's screen rectangle. Rows beyond the grid's
// height render as blank.
func RenderViewport(grid *vt.Grid, width, height int) string {
	var b strings.Builder
	for r := 0; r < height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(renderGridRow(grid, r, width))
	}
	return b.String()
}

func renderGridRow(grid *vt.Grid, row, width int) string {
	var b strings.Builder
	var runPen vt.Pen
	var run strings.Builder
	haveRun := false

	flush := func() {
		if !haveRun {
			return
		}
		b.WriteString(cellStyle(runPen).Render(run.String()))
		run.Reset()
		haveRun = false
	}

	for c := 0; c < width; c++ {
		cell := grid.Cell(row, c)
		if !haveRun || cell.Pen != runPen {
			flush()
			runPen = cell.Pen
			haveRun = true
		}
		ch := cell.Ch
		if ch == 0 {
			ch = ' '
		}
		run.WriteRune(ch)
	}
	flush()
	return b.String()
}

func cellStyle(pen vt.Pen) lipgloss.Style {
	s := lipgloss.NewStyle()
	if pen.FG.Kind != vt.ColorDefault {
		s = s.Foreground(lipgloss.Color(downgrade(pen.FG.Hex(defaultFG))))
	}
	if pen.BG.Kind != vt.ColorDefault {
		s = s.Background(lipgloss.Color(downgrade(pen.BG.Hex(defaultBG))))
	}
	if pen.Attrs.Has(vt.AttrBold) {
		s = s.Bold(true)
	}
	if pen.Attrs.Has(vt.AttrItalic) {
		s = s.Italic(true)
	}
	if pen.Attrs.Has(vt.AttrUnderline) {
		s = s.Underline(true)
	}
	if pen.Attrs.Has(vt.AttrBlink) {
		s = s.Blink(true)
	}
	if pen.Attrs.Has(vt.AttrReverse) {
		s = s.Reverse(true)
	}
	if pen.Attrs.Has(vt.AttrStrikethrough) {
		s = s.Strikethrough(true)
	}
	return s
}
