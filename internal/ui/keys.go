// Key translation and the prefix-key modal input handler: a Ctrl-B prefix
// key arms a one-shot command mode before falling through to literal
// keystrokes sent to the active pane.
package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionKind enumerates the possible outcomes of handling one key.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionExit
	ActionNewTab
	ActionCloseTab
	ActionNextTab
	ActionPrevTab
	ActionSelectTab
	ActionToggleSidebar
	ActionStartRename
	ActionDetach
	ActionSendCtrlB
	ActionSendKey
	ActionCopyScreen // OSC-52 clipboard copy of the active pane
)

// Action is the result of handling one key: a kind plus its payload.
type Action struct {
	Kind      ActionKind
	TabIndex  int    // for ActionSelectTab (0-based)
	KeyTokens string // for ActionSendKey: the tmux send-keys token, or the raw text when Literal
	Literal   bool   // for ActionSendKey: KeyTokens is raw text for send-keys -l, not a token
}

// InputMode is the key router's current mode.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrefix
	ModeRename
)

// InputHandler is the modal key router.
type InputHandler struct {
	Mode         InputMode
	RenameBuffer string
}

// NewInputHandler returns a handler starting in normal mode.
func NewInputHandler() *InputHandler {
	return &InputHandler{Mode: ModeNormal}
}

// HandleKey routes msg according to the current mode; Ctrl-Q always exits
// first, regardless of mode.
func (h *InputHandler) HandleKey(msg tea.KeyMsg) Action {
	if msg.Type == tea.KeyCtrlQ {
		return Action{Kind: ActionExit}
	}

	switch h.Mode {
	case ModePrefix:
		return h.handlePrefixKey(msg)
	case ModeRename:
		return h.handleRenameKey(msg)
	default:
		return h.handleNormalKey(msg)
	}
}

func (h *InputHandler) handleNormalKey(msg tea.KeyMsg) Action {
	if msg.Type == tea.KeyCtrlB {
		h.Mode = ModePrefix
		return Action{Kind: ActionNone}
	}
	return keyToSendAction(msg)
}

func (h *InputHandler) handlePrefixKey(msg tea.KeyMsg) Action {
	h.Mode = ModeNormal

	if msg.Type == tea.KeyCtrlB {
		return Action{Kind: ActionSendCtrlB}
	}

	switch msg.String() {
	case "c":
		return Action{Kind: ActionNewTab}
	case "x":
		return Action{Kind: ActionCloseTab}
	case "n":
		return Action{Kind: ActionNextTab}
	case "p":
		return Action{Kind: ActionPrevTab}
	case "b":
		return Action{Kind: ActionToggleSidebar}
	case ",":
		h.Mode = ModeRename
		h.RenameBuffer = ""
		return Action{Kind: ActionStartRename}
	case "d":
		return Action{Kind: ActionDetach}
	case "y":
		return Action{Kind: ActionCopyScreen}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		return Action{Kind: ActionSelectTab, TabIndex: idx}
	default:
		return Action{Kind: ActionNone}
	}
}

func (h *InputHandler) handleRenameKey(msg tea.KeyMsg) Action {
	switch msg.Type {
	case tea.KeyEsc:
		h.Mode = ModeNormal
		h.RenameBuffer = ""
		return Action{Kind: ActionNone}
	case tea.KeyEnter:
		// Caller must call FinishRename to read RenameBuffer and commit.
		return Action{Kind: ActionNone}
	case tea.KeyBackspace:
		if n := len(h.RenameBuffer); n > 0 {
			h.RenameBuffer = h.RenameBuffer[:n-1]
		}
		return Action{Kind: ActionNone}
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return Action{Kind: ActionNone}
		}
		h.RenameBuffer += string(msg.Runes)
		if msg.Type == tea.KeySpace {
			h.RenameBuffer += " "
		}
		return Action{Kind: ActionNone}
	default:
		return Action{Kind: ActionNone}
	}
}

// FinishRename returns the buffered name and resets to normal mode.
func (h *InputHandler) FinishRename() string {
	name := h.RenameBuffer
	h.Mode = ModeNormal
	h.RenameBuffer = ""
	return name
}

// keyToSendAction converts a raw key into the tmux send-keys token
// understood by the command templates.
func keyToSendAction(msg tea.KeyMsg) Action {
	switch msg.Type {
	case tea.KeyEnter:
		return Action{Kind: ActionSendKey, KeyTokens: "Enter"}
	case tea.KeyBackspace:
		return Action{Kind: ActionSendKey, KeyTokens: "BSpace"}
	case tea.KeyTab:
		return Action{Kind: ActionSendKey, KeyTokens: "Tab"}
	case tea.KeyShiftTab:
		return Action{Kind: ActionSendKey, KeyTokens: "BTab"}
	case tea.KeyEsc:
		return Action{Kind: ActionSendKey, KeyTokens: "Escape"}
	case tea.KeyUp:
		return Action{Kind: ActionSendKey, KeyTokens: "Up"}
	case tea.KeyDown:
		return Action{Kind: ActionSendKey, KeyTokens: "Down"}
	case tea.KeyLeft:
		return Action{Kind: ActionSendKey, KeyTokens: "Left"}
	case tea.KeyRight:
		return Action{Kind: ActionSendKey, KeyTokens: "Right"}
	case tea.KeyHome:
		return Action{Kind: ActionSendKey, KeyTokens: "Home"}
	case tea.KeyEnd:
		return Action{Kind: ActionSendKey, KeyTokens: "End"}
	case tea.KeyPgUp:
		return Action{Kind: ActionSendKey, KeyTokens: "PageUp"}
	case tea.KeyPgDown:
		return Action{Kind: ActionSendKey, KeyTokens: "PageDown"}
	case tea.KeyDelete:
		return Action{Kind: ActionSendKey, KeyTokens: "DC"}
	case tea.KeyInsert:
		return Action{Kind: ActionSendKey, KeyTokens: "IC"}
	case tea.KeySpace:
		return Action{Kind: ActionSendKey, KeyTokens: " ", Literal: true}
	}

	if f, ok := functionKeyToken(msg.Type); ok {
		return Action{Kind: ActionSendKey, KeyTokens: f}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		ch := msg.Runes[0]
		if msg.Alt {
			return Action{Kind: ActionSendKey, KeyTokens: "M-" + string(ch)}
		}
		return Action{Kind: ActionSendKey, KeyTokens: string(msg.Runes), Literal: true}
	}

	// Control-letter keys arrive as their own tea.KeyType (e.g. KeyCtrlA);
	// translate via the literal "C-<c>" string form.
	if s := msg.String(); strings.HasPrefix(s, "ctrl+") && len(s) == 6 {
		return Action{Kind: ActionSendKey, KeyTokens: "C-" + s[5:]}
	}

	return Action{Kind: ActionNone}
}

func functionKeyToken(t tea.KeyType) (string, bool) {
	switch t {
	case tea.KeyF1:
		return "F1", true
	case tea.KeyF2:
		return "F2", true
	case tea.KeyF3:
		return "F3", true
	case tea.KeyF4:
		return "F4", true
	case tea.KeyF5:
		return "F5", true
	case tea.KeyF6:
		return "F6", true
	case tea.KeyF7:
		return "F7", true
	case tea.KeyF8:
		return "F8", true
	case tea.KeyF9:
		return "F9", true
	case tea.KeyF10:
		return "F10", true
	case tea.KeyF11:
		return "F11", true
	case tea.KeyF12:
		return "F12", true
	default:
		return "", false
	}
}
