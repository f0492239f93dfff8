package control

import (
	"strconv"
	"strings"
)

// Command builders, one per control-mode command the driver issues.

// ListWindows builds the window-list query whose response lines feed
// tabs.Registry.RefreshFromList.
func ListWindows() string {
	return "list-windows -F '#{window_id}:#{window_name}:#{window_active}:#{pane_id}'"
}

// NewWindow builds a new-window command, named when name != "".
func NewWindow(name string) string {
	if name == "" {
		return "new-window"
	}
	return "new-window -n '" + EscapeSingleQuotes(name) + "'"
}

// SelectWindow builds a select-window command.
func SelectWindow(windowID string) string {
	return "select-window -t " + windowID
}

// RenameWindow builds a rename-window command.
func RenameWindow(windowID, name string) string {
	return "rename-window -t " + windowID + " '" + EscapeSingleQuotes(name) + "'"
}

// KillWindow builds a kill-window command.
func KillWindow(windowID string) string {
	return "kill-window -t " + windowID
}

// SendKeys builds a named-key send-keys command; keys is a pre-built
// token such as "Enter" or "C-c", not escaped further.
func SendKeys(paneID, keys string) string {
	return "send-keys -t " + paneID + " " + keys
}

// SendText builds a literal-mode send-keys command, escaping text for
// single-quoting.
func SendText(paneID, text string) string {
	return "send-keys -t " + paneID + " -l '" + EscapeSingleQuotes(text) + "'"
}

// RefreshClientSize builds a refresh-client resize-notify command.
func RefreshClientSize(width, height int) string {
	return "refresh-client -C " + strconv.Itoa(width) + "," + strconv.Itoa(height)
}

// Detach builds a detach-client command.
func Detach() string {
	return "detach-client"
}

// EscapeSingleQuotes replaces ' with '\'' so s is safe inside a
// single-quoted shell argument.
func EscapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

