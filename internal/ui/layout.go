package ui

// Rect describes a rectangular region on screen (0-indexed).
type Rect struct {
	X, Y          int
	Width, Height int
}

// DefaultSidebarWidth and CollapsedSidebarWidth are the expanded/collapsed
// sidebar widths.
const (
	DefaultSidebarWidth   = 20
	CollapsedSidebarWidth = 3
)

// HitRegion is the three-way result of Layout.HitTest.
type HitRegion int

const (
	HitNone HitRegion = iota
	HitSidebar
	HitViewport
)

// HitResult carries the region plus its row/col.
type HitResult struct {
	Region HitRegion
	Row    int
	Col    int
}

// Layout splits a host terminal area into a sidebar and main viewport.
type Layout struct {
	area         Rect
	sidebarWidth int
	sidebarLeft  bool
}

// NewLayout creates a layout for the given area with the default sidebar
// width, positioned on the left.
func NewLayout(area Rect) *Layout {
	return &Layout{area: area, sidebarWidth: DefaultSidebarWidth, sidebarLeft: true}
}

// SetArea updates the total area (e.g. on a host terminal resize).
func (l *Layout) SetArea(area Rect) { l.area = area }

// SetSidebarLeft sets whether the sidebar renders on the left (true) or
// right (false).
func (l *Layout) SetSidebarLeft(left bool) { l.sidebarLeft = left }

// SidebarWidth returns the current sidebar width.
func (l *Layout) SidebarWidth() int { return l.sidebarWidth }

// SetSidebarWidth sets the sidebar width directly.
func (l *Layout) SetSidebarWidth(w int) { l.sidebarWidth = w }

// ToggleSidebar flips between CollapsedSidebarWidth and
// DefaultSidebarWidth.
func (l *Layout) ToggleSidebar() {
	if l.sidebarWidth == CollapsedSidebarWidth {
		l.sidebarWidth = DefaultSidebarWidth
	} else if l.sidebarWidth > 0 {
		l.sidebarWidth = CollapsedSidebarWidth
	}
}

// SidebarArea returns the sidebar's rectangle.
func (l *Layout) SidebarArea() Rect {
	if l.sidebarWidth == 0 {
		return Rect{}
	}
	w := l.sidebarWidth
	if w > l.area.Width {
		w = l.area.Width
	}
	if l.sidebarLeft {
		return Rect{X: l.area.X, Y: l.area.Y, Width: w, Height: l.area.Height}
	}
	return Rect{X: l.area.X + l.area.Width - w, Y: l.area.Y, Width: w, Height: l.area.Height}
}

// ViewportArea returns the main viewport's rectangle — what must be
// reported to the server via refresh-client -C w,h.
func (l *Layout) ViewportArea() Rect {
	if l.sidebarWidth == 0 {
		return l.area
	}
	w := l.sidebarWidth
	if w > l.area.Width {
		w = l.area.Width
	}
	mainWidth := l.area.Width - w
	if mainWidth < 0 {
		mainWidth = 0
	}
	if l.sidebarLeft {
		return Rect{X: l.area.X + w, Y: l.area.Y, Width: mainWidth, Height: l.area.Height}
	}
	return Rect{X: l.area.X, Y: l.area.Y, Width: mainWidth, Height: l.area.Height}
}

// TmuxSize returns the viewport's (w, h) for the refresh-client command.
func (l *Layout) TmuxSize() (int, int) {
	vp := l.ViewportArea()
	return vp.Width, vp.Height
}

// HitTest classifies a screen coordinate as sidebar, viewport, or neither.
func (l *Layout) HitTest(x, y int) HitResult {
	sb := l.SidebarArea()
	if x >= sb.X && x < sb.X+sb.Width && y >= sb.Y && y < sb.Y+sb.Height {
		return HitResult{Region: HitSidebar, Row: y - sb.Y}
	}
	vp := l.ViewportArea()
	if x >= vp.X && x < vp.X+vp.Width && y >= vp.Y && y < vp.Y+vp.Height {
		return HitResult{Region: HitViewport, Row: y - vp.Y, Col: x - vp.X}
	}
	return HitResult{Region: HitNone}
}
