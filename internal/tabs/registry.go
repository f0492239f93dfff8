// Package tabs implements the tab registry: the seam between the
// control-mode driver and the VT emulator, mapping server window IDs to
// pane IDs, display names, owned emulators, and activity flags.
package tabs

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rogerneel/helmux/internal/vt"
)

// Tab is a single server window mirrored in the UI. Each tab
// exclusively owns its Emulator; the registry owns all tabs.
type Tab struct {
	WindowID string // server-assigned, "@"-prefixed
	PaneID   string // "%"-prefixed
	Name     string
	Emulator *vt.Emulator
	Activity bool // unseen-output flag
}

// Registry is the keyed store + ordered display sequence + optional
// active window ID.
type Registry struct {
	byID   map[string]*Tab
	order  []string
	active string

	width, height int
}

// NewRegistry creates an empty registry. width/height size any emulator
// created for a newly-discovered tab.
func NewRegistry(width, height int) *Registry {
	return &Registry{
		byID:   make(map[string]*Tab),
		width:  width,
		height: height,
	}
}

// Len returns the number of tabs.
func (r *Registry) Len() int { return len(r.order) }

// Order returns the display-order window IDs. Callers must not mutate the
// returned slice.
func (r *Registry) Order() []string { return r.order }

// Get returns the tab for windowID, or nil if unknown.
func (r *Registry) Get(windowID string) *Tab { return r.byID[windowID] }

// ActiveID returns the active window ID, or "" if none is set.
func (r *Registry) ActiveID() string { return r.active }

// Active returns the active tab, or nil if none is set.
func (r *Registry) Active() *Tab {
	if r.active == "" {
		return nil
	}
	return r.byID[r.active]
}

// RefreshFromList implements refresh_from_list: one tab per line,
// fields `window_id:name:active_flag:pane_id`. Known windows keep their
// existing emulator (only name/pane_id update); unknown windows get a
// fresh emulator sized to the current viewport. Tabs absent from the
// input are dropped. Display order becomes input order; active is the
// line whose active_flag == "1".
func (r *Registry) RefreshFromList(lines []string) {
	seen := make(map[string]bool, len(lines))
	newOrder := make([]string, 0, len(lines))
	newActive := ""

	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, ":", 4)
		if len(fields) < 4 {
			continue
		}
		windowID, name, activeFlag, paneID := fields[0], fields[1], fields[2], fields[3]

		seen[windowID] = true
		newOrder = append(newOrder, windowID)
		if activeFlag == "1" {
			newActive = windowID
		}

		if existing, ok := r.byID[windowID]; ok {
			existing.Name = name
			existing.PaneID = paneID
		} else {
			r.byID[windowID] = &Tab{
				WindowID: windowID,
				PaneID:   paneID,
				Name:     name,
				Emulator: vt.NewEmulator(r.width, r.height),
			}
		}
	}

	absent := lo.Filter(lo.Keys(r.byID), func(id string, _ int) bool {
		return !seen[id]
	})
	for _, id := range absent {
		delete(r.byID, id)
	}

	r.order = newOrder
	r.active = newActive
}

// Add implements add: no-op if known, otherwise appended with a
// fresh emulator.
func (r *Registry) Add(windowID, paneID, name string) {
	if _, ok := r.byID[windowID]; ok {
		return
	}
	r.byID[windowID] = &Tab{
		WindowID: windowID,
		PaneID:   paneID,
		Name:     name,
		Emulator: vt.NewEmulator(r.width, r.height),
	}
	r.order = append(r.order, windowID)
}

// Remove implements remove: drops the tab; if it was active,
// promotes the first remaining tab by order.
func (r *Registry) Remove(windowID string) {
	if _, ok := r.byID[windowID]; !ok {
		return
	}
	delete(r.byID, windowID)
	for i, id := range r.order {
		if id == windowID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.active == windowID {
		if len(r.order) > 0 {
			r.active = r.order[0]
		} else {
			r.active = ""
		}
	}
}

// Rename implements rename: display-name-only update.
func (r *Registry) Rename(windowID, name string) {
	if t, ok := r.byID[windowID]; ok {
		t.Name = name
	}
}

// SetActive implements set_active: sets active and clears that
// tab's activity flag, no-op if windowID is unknown.
func (r *Registry) SetActive(windowID string) {
	if t, ok := r.byID[windowID]; ok {
		r.active = windowID
		t.Activity = false
	}
}

// RouteOutput implements route_output: finds the tab whose pane ID
// matches, feeds its emulator, and sets its activity flag if it isn't the
// active tab.
func (r *Registry) RouteOutput(paneID string, data []byte) {
	for _, id := range r.order {
		t := r.byID[id]
		if t.PaneID != paneID {
			continue
		}
		t.Emulator.Write(data)
		if id != r.active {
			t.Activity = true
		}
		return
	}
}

// Resize implements resize: resizes every owned emulator and
// records the new default size for subsequently-created tabs.
func (r *Registry) Resize(width, height int) {
	r.width, r.height = width, height
	for _, t := range r.byID {
		t.Emulator.Resize(width, height)
	}
}

// Next returns the window ID that follows windowID in display order,
// wrapping around. Returns "" if the registry is empty.
func (r *Registry) Next(windowID string) string { return r.neighbor(windowID, 1) }

// Prev returns the window ID that precedes windowID in display order,
// wrapping around. Returns "" if the registry is empty.
func (r *Registry) Prev(windowID string) string { return r.neighbor(windowID, -1) }

func (r *Registry) neighbor(windowID string, delta int) string {
	n := len(r.order)
	if n == 0 {
		return ""
	}
	idx := 0
	for i, id := range r.order {
		if id == windowID {
			idx = i
			break
		}
	}
	idx = ((idx+delta)%n + n) % n
	return r.order[idx]
}

// ByIndex returns the window ID at 1-based display position i, or "" if
// out of range.
func (r *Registry) ByIndex(i int) string {
	if i < 1 || i > len(r.order) {
		return ""
	}
	return r.order[i-1]
}
