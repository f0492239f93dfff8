package ui

import (
	"strings"
	"testing"
)

func TestRenderFooter_NormalModeShowsSessionAndTabCount(t *testing.T) {
	out := RenderFooter(FooterData{SessionName: "work", TabCount: 3, ActiveIndex: 2}, 80)

	if !strings.Contains(out, "work") {
		t.Errorf("RenderFooter() = %q, want it to contain the session name", out)
	}
	if !strings.Contains(out, "tab 2/3") {
		t.Errorf("RenderFooter() = %q, want it to contain \"tab 2/3\"", out)
	}
	if !strings.Contains(out, "^Q to quit") {
		t.Errorf("RenderFooter() in normal mode = %q, want the quit hint", out)
	}
}

func TestRenderFooter_PrefixModeShowsShortcuts(t *testing.T) {
	out := RenderFooter(FooterData{SessionName: "work", TabCount: 1, ActiveIndex: 1, Mode: SidebarPrefix}, 80)

	if !strings.Contains(out, "new") || !strings.Contains(out, "close") {
		t.Errorf("RenderFooter() in prefix mode = %q, want the shortcut legend", out)
	}
}

func TestRenderFooter_DetachedIsFlagged(t *testing.T) {
	out := RenderFooter(FooterData{SessionName: "work", TabCount: 1, ActiveIndex: 1, Detached: true}, 80)

	if !strings.Contains(out, "detached") {
		t.Errorf("RenderFooter() = %q, want it to contain \"detached\"", out)
	}
}
