// Package app contains the root Bubbletea model that wires the control-mode
// driver, the tab registry, and the VT emulators to the host terminal UI:
// a single struct driving everything through Bubbletea's event loop.
package app

import (
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/bep/debounce"
	"github.com/pkg/errors"

	"github.com/rogerneel/helmux/internal/config"
	"github.com/rogerneel/helmux/internal/control"
	"github.com/rogerneel/helmux/internal/tabs"
	"github.com/rogerneel/helmux/internal/ui"
)

// driverEventMsg carries one demultiplexed control.Event (or a terminal
// error) from the blocking NextEvent read loop into Update.
type driverEventMsg struct {
	event control.Event
	err   error
}

// resizeSettledMsg fires once bep/debounce judges a burst of
// tea.WindowSizeMsg has quieted down.
type resizeSettledMsg struct {
	width, height int
}

// driverExitedMsg signals the child process is gone and no more events
// will arrive.
type driverExitedMsg struct{ reason string }

// Model is the root application model.
type Model struct {
	cfg    config.Config
	logger *log.Logger

	driver   *control.Driver
	registry *tabs.Registry
	layout   *ui.Layout
	input    *ui.InputHandler

	pendingRefreshID int

	resizeDebounced func(func())
	resizeCh        chan [2]int

	width, height int

	quitting bool
	detached bool
	fatalErr error
}

// New spawns the multiplexer driver and constructs the initial model.
func New(cfg config.Config, logger *log.Logger) (*Model, error) {
	args := []string{"-C", "new-session", "-A", "-s", cfg.SessionName}
	d, err := control.Spawn(cfg.Multiplexer, args, logger)
	if err != nil {
		return nil, errors.Wrap(err, "app: spawn multiplexer")
	}

	reg := tabs.NewRegistry(80, 24)
	layout := ui.NewLayout(ui.Rect{Width: 80, Height: 24})
	layout.SetSidebarWidth(cfg.SidebarWidth)
	layout.SetSidebarLeft(cfg.SidebarLeft)

	m := &Model{
		cfg:      cfg,
		logger:   logger,
		driver:   d,
		registry: reg,
		layout:   layout,
		input:    ui.NewInputHandler(),
		resizeCh: make(chan [2]int, 1),
	}
	m.resizeDebounced = debounce.New(150 * time.Millisecond)
	return m, nil
}

// Init starts the driver-event listener, the resize-settle listener, and
// issues the first window list query.
func (m *Model) Init() tea.Cmd {
	id, _ := m.driver.Send(control.ListWindows())
	m.pendingRefreshID = id
	return tea.Batch(
		waitForDriverEvent(m.driver),
		waitForResizeSettled(m.resizeCh),
	)
}

// Update dispatches Bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case resizeSettledMsg:
		return m.handleResizeSettled(msg)

	case driverEventMsg:
		return m.handleDriverEvent(msg)

	case driverExitedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.layout.SetArea(ui.Rect{Width: msg.Width, Height: msg.Height})
	w, h := m.layout.TmuxSize()
	ch := m.resizeCh
	m.resizeDebounced(func() {
		select {
		case <-ch:
		default:
		}
		ch <- [2]int{w, h}
	})
	return m, nil
}

func (m *Model) handleResizeSettled(msg resizeSettledMsg) (tea.Model, tea.Cmd) {
	m.registry.Resize(msg.width, msg.height)
	_, _ = m.driver.Send(control.RefreshClientSize(msg.width, msg.height))
	return m, waitForResizeSettled(m.resizeCh)
}

func (m *Model) handleDriverEvent(msg driverEventMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.fatalErr = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	ev := msg.event
	switch ev.Kind {
	case control.EventOutput:
		m.registry.RouteOutput(ev.PaneID, ev.Data)

	case control.EventWindowAdd, control.EventWindowClose, control.EventWindowRenamed, control.EventSessionChanged:
		id, _ := m.driver.Send(control.ListWindows())
		m.pendingRefreshID = id

	case control.EventCommandResponse:
		if ev.ID == m.pendingRefreshID {
			lines := strings.Split(ev.Message, "\n")
			m.registry.RefreshFromList(lines)
		}

	case control.EventCommandError:
		if m.logger != nil {
			m.logger.Printf("command %d error: %s", ev.ID, ev.Message)
		}

	case control.EventExit:
		return m, func() tea.Msg { return driverExitedMsg{reason: ev.Reason} }
	}

	return m, waitForDriverEvent(m.driver)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	hit := m.layout.HitTest(msg.X, msg.Y)
	switch hit.Region {
	case ui.HitSidebar:
		m.handleSidebarClick(hit, msg)
	case ui.HitViewport:
		m.handleViewportMouse(hit, msg)
	}
	return m, nil
}

func (m *Model) handleSidebarClick(hit ui.HitResult, msg tea.MouseMsg) {
	if msg.Type != tea.MouseLeft {
		return
	}
	sb := m.layout.SidebarArea()
	headerRows := 0
	if m.input.Mode != ui.ModeNormal {
		headerRows = 1
	}
	if ui.IsNewTabButtonRow(hit.Row, sb.Height) {
		_, _ = m.driver.Send(control.NewWindow(""))
		return
	}
	idx, ok := ui.RowToTabIndex(hit.Row, m.registry.Len(), sb.Height, headerRows)
	if !ok {
		return
	}
	windowID := m.registry.ByIndex(idx + 1)
	if windowID == "" {
		return
	}
	m.registry.SetActive(windowID)
	_, _ = m.driver.Send(control.SelectWindow(windowID))
}

func (m *Model) handleViewportMouse(hit ui.HitResult, msg tea.MouseMsg) {
	active := m.registry.Active()
	if active == nil {
		return
	}
	seq, ok := ui.TranslateViewportMouse(msg, hit.Row, hit.Col)
	if !ok {
		return
	}
	_, _ = m.driver.Send(control.SendText(active.PaneID, seq))
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	wasRenaming := m.input.Mode == ui.ModeRename
	action := m.input.HandleKey(msg)

	if wasRenaming && msg.Type == tea.KeyEnter {
		name := m.input.FinishRename()
		if active := m.registry.Active(); active != nil {
			if name != "" {
				m.registry.Rename(active.WindowID, name)
				_, _ = m.driver.Send(control.RenameWindow(active.WindowID, name))
			} else {
				_, _ = m.driver.Send("set-window-option -t " + active.WindowID + " automatic-rename on")
			}
		}
		return m, nil
	}

	switch action.Kind {
	case ui.ActionExit:
		m.quitting = true
		return m, tea.Quit

	case ui.ActionNewTab:
		_, _ = m.driver.Send(control.NewWindow(""))

	case ui.ActionCloseTab:
		if active := m.registry.Active(); active != nil {
			_, _ = m.driver.Send(control.KillWindow(active.WindowID))
		}

	case ui.ActionNextTab:
		m.selectWindow(m.registry.Next(m.registry.ActiveID()))

	case ui.ActionPrevTab:
		m.selectWindow(m.registry.Prev(m.registry.ActiveID()))

	case ui.ActionSelectTab:
		m.selectWindow(m.registry.ByIndex(action.TabIndex + 1))

	case ui.ActionToggleSidebar:
		m.layout.ToggleSidebar()

	case ui.ActionStartRename:
		// Mode switch already applied by InputHandler.

	case ui.ActionDetach:
		_, _ = m.driver.Send(control.Detach())
		m.detached = true

	case ui.ActionSendCtrlB:
		if active := m.registry.Active(); active != nil {
			_, _ = m.driver.Send(control.SendKeys(active.PaneID, "C-b"))
		}

	case ui.ActionCopyScreen:
		m.copyActiveScreen()

	case ui.ActionSendKey:
		if active := m.registry.Active(); active != nil {
			if action.Literal {
				_, _ = m.driver.Send(control.SendText(active.PaneID, action.KeyTokens))
			} else {
				_, _ = m.driver.Send(control.SendKeys(active.PaneID, action.KeyTokens))
			}
		}
	}

	return m, nil
}

func (m *Model) selectWindow(windowID string) {
	if windowID == "" {
		return
	}
	m.registry.SetActive(windowID)
	_, _ = m.driver.Send(control.SelectWindow(windowID))
}

// waitForDriverEvent blocks on the driver's demultiplexed event stream and
// wraps the result for Update; re-issued after every message so the
// stream keeps flowing (the standard Bubbletea persistent-listener idiom).
func waitForDriverEvent(d *control.Driver) tea.Cmd {
	return func() tea.Msg {
		ev, err := d.NextEvent()
		return driverEventMsg{event: ev, err: err}
	}
}

// waitForResizeSettled blocks on the debounced resize channel.
func waitForResizeSettled(ch chan [2]int) tea.Cmd {
	return func() tea.Msg {
		size := <-ch
		return resizeSettledMsg{width: size[0], height: size[1]}
	}
}
