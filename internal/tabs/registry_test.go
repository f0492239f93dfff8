package tabs

import "testing"

func TestRefreshFromList_AddsTabsInOrderAndSetsActive(t *testing.T) {
	r := NewRegistry(80, 24)
	r.RefreshFromList([]string{
		"@1:one:0:%0",
		"@2:two:1:%1",
		"@3:three:0:%2",
	})

	if got := r.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := r.ActiveID(); got != "@2" {
		t.Errorf("ActiveID() = %q, want @2", got)
	}
	wantOrder := []string{"@1", "@2", "@3"}
	order := r.Order()
	for i, id := range wantOrder {
		if order[i] != id {
			t.Errorf("Order()[%d] = %q, want %q", i, order[i], id)
		}
	}
	if tab := r.Get("@2"); tab == nil || tab.Name != "two" || tab.PaneID != "%1" {
		t.Errorf("Get(@2) = %+v, want Name=two PaneID=%%1", tab)
	}
}

func TestRefreshFromList_KeepsExistingEmulatorForKnownWindow(t *testing.T) {
	r := NewRegistry(80, 24)
	r.RefreshFromList([]string{"@1:one:1:%0"})
	original := r.Get("@1").Emulator
	original.Write([]byte("hello"))

	r.RefreshFromList([]string{"@1:renamed:1:%0"})

	tab := r.Get("@1")
	if tab.Emulator != original {
		t.Error("RefreshFromList replaced the emulator for a previously-known window")
	}
	if tab.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", tab.Name)
	}
}

func TestRefreshFromList_DropsWindowsAbsentFromInput(t *testing.T) {
	r := NewRegistry(80, 24)
	r.RefreshFromList([]string{"@1:one:1:%0", "@2:two:0:%1"})
	r.RefreshFromList([]string{"@1:one:1:%0"})

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if r.Get("@2") != nil {
		t.Error("expected @2 to be dropped")
	}
}

func TestAdd_NoopWhenAlreadyKnown(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	first := r.Get("@1")
	r.Add("@1", "%9", "renamed")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if r.Get("@1") != first || r.Get("@1").Name != "one" {
		t.Error("Add() mutated an already-known tab")
	}
}

func TestRemove_PromotesFirstRemainingTabWhenActiveRemoved(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")
	r.SetActive("@1")

	r.Remove("@1")

	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if got := r.ActiveID(); got != "@2" {
		t.Errorf("ActiveID() after removing active tab = %q, want @2", got)
	}
}

func TestRemove_ClearsActiveWhenRegistryEmptied(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.SetActive("@1")

	r.Remove("@1")

	if got := r.ActiveID(); got != "" {
		t.Errorf("ActiveID() after emptying registry = %q, want \"\"", got)
	}
	if r.Active() != nil {
		t.Error("Active() should be nil once the registry is empty")
	}
}

func TestRename_UpdatesDisplayNameOnly(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")

	r.Rename("@1", "renamed")

	if got := r.Get("@1").Name; got != "renamed" {
		t.Errorf("Name = %q, want renamed", got)
	}
}

func TestSetActive_ClearsActivityFlag(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")
	r.RouteOutput("%1", []byte("x"))
	if !r.Get("@2").Activity {
		t.Fatal("expected @2 to have activity set before SetActive")
	}

	r.SetActive("@2")

	if r.Get("@2").Activity {
		t.Error("SetActive did not clear the activity flag")
	}
	if r.ActiveID() != "@2" {
		t.Errorf("ActiveID() = %q, want @2", r.ActiveID())
	}
}

func TestRouteOutput_SetsActivityOnlyWhenNotActive(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")
	r.SetActive("@1")

	r.RouteOutput("%0", []byte("hi"))
	r.RouteOutput("%1", []byte("hi"))

	if r.Get("@1").Activity {
		t.Error("active tab should never have its activity flag set by RouteOutput")
	}
	if !r.Get("@2").Activity {
		t.Error("inactive tab should have its activity flag set by RouteOutput")
	}
}

func TestRouteOutput_UnknownPaneIsNoop(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")

	r.RouteOutput("%99", []byte("hi"))

	if r.Get("@1").Activity {
		t.Error("RouteOutput with an unknown pane ID should not affect any tab")
	}
}

func TestResize_AppliesToAllEmulators(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")

	r.Resize(100, 40)

	for _, id := range []string{"@1", "@2"} {
		g := r.Get(id).Emulator.Grid()
		if g.Width() != 100 || g.Height() != 40 {
			t.Errorf("tab %s grid = (%d,%d), want (100,40)", id, g.Width(), g.Height())
		}
	}
}

func TestNextPrev_WrapAround(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")
	r.Add("@3", "%2", "three")

	if got := r.Next("@3"); got != "@1" {
		t.Errorf("Next(@3) = %q, want @1 (wrap)", got)
	}
	if got := r.Prev("@1"); got != "@3" {
		t.Errorf("Prev(@1) = %q, want @3 (wrap)", got)
	}
	if got := r.Next("@1"); got != "@2" {
		t.Errorf("Next(@1) = %q, want @2", got)
	}
}

func TestByIndex_OneBasedAndOutOfRange(t *testing.T) {
	r := NewRegistry(80, 24)
	r.Add("@1", "%0", "one")
	r.Add("@2", "%1", "two")

	if got := r.ByIndex(1); got != "@1" {
		t.Errorf("ByIndex(1) = %q, want @1", got)
	}
	if got := r.ByIndex(2); got != "@2" {
		t.Errorf("ByIndex(2) = %q, want @2", got)
	}
	if got := r.ByIndex(0); got != "" {
		t.Errorf("ByIndex(0) = %q, want \"\"", got)
	}
	if got := r.ByIndex(3); got != "" {
		t.Errorf("ByIndex(3) = %q, want \"\"", got)
	}
}
