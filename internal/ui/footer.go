// Footer paint: a one-line status/shortcut hint bar built from key/value
// segments joined with separators, carrying session name, tab count, and
// the current input mode.
package ui

import (
	"fmt"
	"strings"
)

// FooterData is the footer's read-only snapshot for one render.
type FooterData struct {
	SessionName string
	TabCount    int
	ActiveIndex int // 1-based
	Mode        SidebarMode
	Detached    bool
}

// RenderFooter renders the footer line within width columns.
func RenderFooter(d FooterData, width int) string {
	var segs []string

	segs = append(segs, FooterKeyStyle.Render(d.SessionName))
	segs = append(segs, FooterDimStyle.Render(fmt.Sprintf("tab %d/%d", d.ActiveIndex, d.TabCount)))

	if d.Detached {
		segs = append(segs, FooterDimStyle.Render("detached"))
	}

	switch d.Mode {
	case SidebarPrefix:
		segs = append(segs, FooterKeyStyle.Render("^B-")+FooterDimStyle.Render(" c new  x close  n/p next/prev  1-9 select  b sidebar  , rename  y copy  d detach"))
	case SidebarRename:
		segs = append(segs, FooterDimStyle.Render("enter to confirm, esc to cancel"))
	default:
		segs = append(segs, FooterDimStyle.Render("^B for commands  ^Q to quit"))
	}

	line := strings.Join(segs, FooterDimStyle.Render("  │  "))
	return FooterStyle.Width(width).Render(line)
}
