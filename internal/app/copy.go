// Clipboard copy: Ctrl-B y copies the active tab's visible screen text to
// the host clipboard via an OSC-52 escape sequence written directly to
// stdout, bypassing the multiplexer entirely (the host terminal, not the
// server, owns the clipboard).
package app

import (
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// copyActiveScreen writes the active tab's plain-text screen contents to
// the host clipboard.
func (m *Model) copyActiveScreen() {
	active := m.registry.Active()
	if active == nil {
		return
	}
	grid := active.Emulator.Grid()
	var lines []string
	for r := 0; r < grid.Height(); r++ {
		lines = append(lines, strings.TrimRight(grid.PlainTextRow(r), " "))
	}
	text := strings.Join(lines, "\n")
	_, _ = osc52.New(text).WriteTo(os.Stdout)
}
