package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleKey_CtrlQAlwaysExits(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlQ})

	if action.Kind != ActionExit {
		t.Errorf("HandleKey(Ctrl-Q) = %+v, want ActionExit", action)
	}
}

func TestHandleKey_CtrlBArmsPrefixMode(t *testing.T) {
	h := NewInputHandler()

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB})

	if action.Kind != ActionNone {
		t.Errorf("HandleKey(Ctrl-B) = %+v, want ActionNone", action)
	}
	if h.Mode != ModePrefix {
		t.Errorf("Mode = %v, want ModePrefix", h.Mode)
	}
}

func TestHandleKey_NormalModePrintableSendsLiteral(t *testing.T) {
	h := NewInputHandler()

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if action.Kind != ActionSendKey || !action.Literal || action.KeyTokens != "q" {
		t.Errorf("HandleKey('q') = %+v, want ActionSendKey Literal=true KeyTokens=q", action)
	}
}

func TestHandleKey_PrefixNewTabReturnsToNormal(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	if action.Kind != ActionNewTab {
		t.Errorf("HandleKey('c') in prefix mode = %+v, want ActionNewTab", action)
	}
	if h.Mode != ModeNormal {
		t.Errorf("Mode after prefix keystroke = %v, want ModeNormal", h.Mode)
	}
}

func TestHandleKey_PrefixSelectTab(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

	if action.Kind != ActionSelectTab || action.TabIndex != 2 {
		t.Errorf("HandleKey('3') in prefix mode = %+v, want ActionSelectTab TabIndex=2", action)
	}
}

func TestHandleKey_PrefixDetach(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if action.Kind != ActionDetach {
		t.Errorf("HandleKey('d') in prefix mode = %+v, want ActionDetach", action)
	}
}

func TestHandleKey_PrefixCopyScreen(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})

	if action.Kind != ActionCopyScreen {
		t.Errorf("HandleKey('y') in prefix mode = %+v, want ActionCopyScreen", action)
	}
}

func TestHandleKey_PrefixDoubleCtrlBSendsLiteralCtrlB(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlB})

	if action.Kind != ActionSendCtrlB {
		t.Errorf("HandleKey(Ctrl-B) in prefix mode = %+v, want ActionSendCtrlB", action)
	}
	if h.Mode != ModeNormal {
		t.Errorf("Mode after double Ctrl-B = %v, want ModeNormal", h.Mode)
	}
}

func TestHandleKey_PrefixCommaStartsRename(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModePrefix

	action := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{','}})

	if action.Kind != ActionStartRename {
		t.Errorf("HandleKey(',') in prefix mode = %+v, want ActionStartRename", action)
	}
	if h.Mode != ModeRename {
		t.Errorf("Mode after ',' = %v, want ModeRename", h.Mode)
	}
}

func TestRenameFlow_TypeAndFinish(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModeRename
	h.RenameBuffer = ""

	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	if h.RenameBuffer != "ac" {
		t.Fatalf("RenameBuffer = %q, want %q", h.RenameBuffer, "ac")
	}

	name := h.FinishRename()
	if name != "ac" {
		t.Errorf("FinishRename() = %q, want %q", name, "ac")
	}
	if h.Mode != ModeNormal {
		t.Errorf("Mode after FinishRename = %v, want ModeNormal", h.Mode)
	}
	if h.RenameBuffer != "" {
		t.Errorf("RenameBuffer after FinishRename = %q, want empty", h.RenameBuffer)
	}
}

func TestRenameFlow_EscAbortsWithoutCommitting(t *testing.T) {
	h := NewInputHandler()
	h.Mode = ModeRename
	h.RenameBuffer = "partial"

	h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	if h.Mode != ModeNormal {
		t.Errorf("Mode after Esc = %v, want ModeNormal", h.Mode)
	}
	if h.RenameBuffer != "" {
		t.Errorf("RenameBuffer after Esc = %q, want empty", h.RenameBuffer)
	}
}

func TestKeyToSendAction_NamedKeys(t *testing.T) {
	cases := []struct {
		keyType tea.KeyType
		want    string
	}{
		{tea.KeyEnter, "Enter"},
		{tea.KeyBackspace, "BSpace"},
		{tea.KeyTab, "Tab"},
		{tea.KeyShiftTab, "BTab"},
		{tea.KeyEsc, "Escape"},
		{tea.KeyUp, "Up"},
		{tea.KeyDown, "Down"},
		{tea.KeyLeft, "Left"},
		{tea.KeyRight, "Right"},
		{tea.KeyHome, "Home"},
		{tea.KeyEnd, "End"},
		{tea.KeyPgUp, "PageUp"},
		{tea.KeyPgDown, "PageDown"},
		{tea.KeyDelete, "DC"},
		{tea.KeyInsert, "IC"},
		{tea.KeyF1, "F1"},
		{tea.KeyF12, "F12"},
	}
	for _, c := range cases {
		action := keyToSendAction(tea.KeyMsg{Type: c.keyType})
		if action.Kind != ActionSendKey || action.KeyTokens != c.want {
			t.Errorf("keyToSendAction(%v) = %+v, want KeyTokens=%q", c.keyType, action, c.want)
		}
	}
}

func TestKeyToSendAction_AltRune(t *testing.T) {
	action := keyToSendAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	if action.Kind != ActionSendKey || action.KeyTokens != "M-x" {
		t.Errorf("keyToSendAction(alt+x) = %+v, want KeyTokens=M-x", action)
	}
}

func TestKeyToSendAction_CtrlLetter(t *testing.T) {
	action := keyToSendAction(tea.KeyMsg{Type: tea.KeyCtrlA})
	if action.Kind != ActionSendKey || action.KeyTokens != "C-a" {
		t.Errorf("keyToSendAction(ctrl+a) = %+v, want KeyTokens=C-a", action)
	}
}

func TestKeyToSendAction_LiteralRuneCarriesRawText(t *testing.T) {
	action := keyToSendAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("'")})
	if action.Kind != ActionSendKey || !action.Literal || action.KeyTokens != "'" {
		t.Errorf("keyToSendAction(') = %+v, want ActionSendKey Literal=true KeyTokens='", action)
	}
}

func TestKeyToSendAction_Space(t *testing.T) {
	action := keyToSendAction(tea.KeyMsg{Type: tea.KeySpace})
	if action.Kind != ActionSendKey || !action.Literal || action.KeyTokens != " " {
		t.Errorf("keyToSendAction(space) = %+v, want ActionSendKey Literal=true KeyTokens=\" \"", action)
	}
}
