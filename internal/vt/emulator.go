package vt

// Emulator is the per-pane VT100/ANSI engine: a cell grid plus cursor,
// pen, scroll-region, saved-cursor, and origin-mode state. It is the sink
// of a Parser — the parser's five semantic events are dispatched here via
// the Print/Execute/CSI/OSC/ESC methods, which together satisfy the
// parser's Consumer interface through direct compile-time binding.
type Emulator struct {
	grid *Grid

	row, col      int
	cursorVisible bool
	pen           Pen

	scrollTop, scrollBottom int
	originMode              bool

	savedRow, savedCol int

	// Title is set by an OSC 0/2 sequence; surfaced to collaborators but
	// unused by the emulator itself.
	Title string

	parser *Parser
}

// NewEmulator creates an emulator with a fresh grid of the given
// dimensions, home cursor, default pen, and a full-height scroll region.
func NewEmulator(width, height int) *Emulator {
	e := &Emulator{
		grid:          newGrid(width, height),
		cursorVisible: true,
		scrollBottom:  height - 1,
	}
	e.parser = NewParser(e)
	return e
}

// Grid exposes the underlying cell grid for rendering.
func (e *Emulator) Grid() *Grid { return e.grid }

// Cursor returns the current cursor position.
func (e *Emulator) Cursor() (row, col int) { return e.row, e.col }

// CursorVisible reports whether the cursor should be painted.
func (e *Emulator) CursorVisible() bool { return e.cursorVisible }

// Write feeds raw bytes (e.g. a driver Output event's decoded payload)
// through the parser into this emulator.
func (e *Emulator) Write(p []byte) {
	e.parser.Advance(p)
}

// Resize applies resize semantics and clamps cursor/scroll region.
func (e *Emulator) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	e.grid.resize(width, height)
	e.scrollBottom = height - 1
	if e.scrollTop >= e.scrollBottom {
		e.scrollTop = 0
	}
	e.clampCursor()
}

func (e *Emulator) clampCursor() {
	if e.row < 0 {
		e.row = 0
	}
	if e.row >= e.grid.height {
		e.row = e.grid.height - 1
	}
	if e.col < 0 {
		e.col = 0
	}
	if e.col > e.grid.width {
		e.col = e.grid.width
	}
}

// ---- Consumer methods (parser -> emulator) ----

// Print writes a displayable code point at the cursor using the current
// pen, handling the deferred-wrap rule: if col == width before the print,
// the cursor wraps first (col <- 0, move-cursor-down(1)).
func (e *Emulator) Print(ch rune) {
	if e.col >= e.grid.width {
		e.col = 0
		e.moveCursorDown(1)
	}
	e.grid.rows[e.row][e.col] = Cell{Ch: ch, Pen: e.pen}
	e.col++
}

// Execute handles a C0 control byte.
func (e *Emulator) Execute(b byte) {
	switch b {
	case 0x08: // BS
		if e.col > 0 {
			e.col--
		}
	case 0x09: // HT
		next := ((e.col / 8) + 1) * 8
		if next > e.grid.width-1 {
			next = e.grid.width - 1
		}
		e.col = next
	case 0x0D: // CR
		e.col = 0
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		e.moveCursorDown(1)
	case 0x07: // BEL
		// ignored
	}
}

// moveCursorDown implements move-cursor-down(n): scrolls at
// scroll_bottom instead of exceeding it.
func (e *Emulator) moveCursorDown(n int) {
	for i := 0; i < n; i++ {
		if e.row == e.scrollBottom {
			e.scrollUp(1)
		} else if e.row < e.grid.height-1 {
			e.row++
		}
	}
}

// scrollUp implements scroll-up(n): shifts the scroll region up,
// pushing evicted top rows to scrollback only when scroll_top == 0.
func (e *Emulator) scrollUp(n int) {
	for i := 0; i < n; i++ {
		if e.scrollTop == 0 {
			e.grid.pushScrollback(e.grid.rows[e.scrollTop])
		}
		copy(e.grid.rows[e.scrollTop:e.scrollBottom], e.grid.rows[e.scrollTop+1:e.scrollBottom+1])
		e.grid.rows[e.scrollBottom] = newRow(e.grid.width)
	}
}

// scrollDown implements scroll-down(n): symmetric, never touches
// scrollback.
func (e *Emulator) scrollDown(n int) {
	for i := 0; i < n; i++ {
		copy(e.grid.rows[e.scrollTop+1:e.scrollBottom+1], e.grid.rows[e.scrollTop:e.scrollBottom])
		e.grid.rows[e.scrollTop] = newRow(e.grid.width)
	}
}
