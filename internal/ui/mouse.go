// Mouse translation: host mouse events falling inside the viewport are
// converted to SGR-1006 sequences and delivered to the active pane via
// send-keys -l; sidebar clicks never reach the server.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// SGR-1006 button codes.
const (
	mouseButtonLeft   = 0
	mouseButtonMiddle = 1
	mouseButtonRight  = 2
	mouseDragBit      = 32
	mouseWheelUp      = 64
	mouseWheelDown    = 65
	mouseWheelLeft    = 66
	mouseWheelRight   = 67
)

// EncodeSGRMouse builds the SGR-1006 escape sequence
// "ESC [ < Cb ; Px ; Py (M|m)" for a mouse event at 1-based viewport
// coordinates (col, row). press selects the trailing M (press/drag) vs m
// (release).
func EncodeSGRMouse(button int, col, row int, press bool) string {
	trailer := "M"
	if !press {
		trailer = "m"
	}
	return fmt.Sprintf("\x1b[<%d;%d;%d%s", button, col, row, trailer)
}

// sgrButtonCode maps a bubbletea mouse message to its SGR-1006 button code,
// matching code table.
func sgrButtonCode(msg tea.MouseMsg) (code int, press bool, ok bool) {
	switch msg.Type {
	case tea.MouseLeft:
		return mouseButtonLeft, true, true
	case tea.MouseMiddle:
		return mouseButtonMiddle, true, true
	case tea.MouseRight:
		return mouseButtonRight, true, true
	case tea.MouseRelease:
		return mouseButtonLeft, false, true
	case tea.MouseMotion:
		if msg.Button == tea.MouseButtonLeft {
			return mouseButtonLeft + mouseDragBit, true, true
		}
		return 0, false, false
	case tea.MouseWheelUp:
		return mouseWheelUp, true, true
	case tea.MouseWheelDown:
		return mouseWheelDown, true, true
	case tea.MouseWheelLeft:
		return mouseWheelLeft, true, true
	case tea.MouseWheelRight:
		return mouseWheelRight, true, true
	default:
		return 0, false, false
	}
}

// TranslateViewportMouse converts a host mouse event already known to fall
// inside the viewport (row, col are 0-based viewport-relative, per
// Layout.HitTest) into the literal keys payload to send via
// "send-keys -t <pane> -l <seq>". ok is false for event types with no
// SGR-1006 encoding (e.g. unrecognized buttons).
func TranslateViewportMouse(msg tea.MouseMsg, row, col int) (seq string, ok bool) {
	code, press, ok := sgrButtonCode(msg)
	if !ok {
		return "", false
	}
	return EncodeSGRMouse(code, col+1, row+1, press), true
}
