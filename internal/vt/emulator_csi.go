package vt

// CSI dispatches a parsed CSI sequence verb table. params arrive flat
// (':'-separated sub-parameters are separate entries, not reduced to their
// first element), with missing values resolved to -1 (so this layer can
// tell "absent" from "explicit 0").
func (e *Emulator) CSI(params []int, intermediates []byte, final byte) {
	priv := len(intermediates) > 0 && intermediates[0] == '?'

	n := func(i int, def int) int {
		if i >= len(params) || params[i] < 0 {
			return def
		}
		if params[i] == 0 {
			return def
		}
		return params[i]
	}
	raw := func(i int, def int) int {
		if i >= len(params) || params[i] < 0 {
			return def
		}
		return params[i]
	}

	switch final {
	case 'A': // CUU
		e.row = max(e.row-n(0, 1), e.scrollTop)
	case 'B', 'e': // CUD
		e.row = min(e.row+n(0, 1), e.scrollBottom)
	case 'C', 'a': // CUF
		e.col = min(e.col+n(0, 1), e.grid.width-1)
	case 'D': // CUB
		e.col = max(e.col-n(0, 1), 0)
	case 'E': // CNL
		e.moveCursorDown(n(0, 1))
		e.col = 0
	case 'F': // CPL
		e.row = max(e.row-n(0, 1), e.scrollTop)
		e.col = 0
	case 'G', '`': // CHA / HPA
		e.col = min(n(0, 1)-1, e.grid.width-1)
		if e.col < 0 {
			e.col = 0
		}
	case 'd': // VPA
		row := n(0, 1) - 1
		lo, hi := 0, e.grid.height-1
		if e.originMode {
			lo, hi = e.scrollTop, e.scrollBottom
		}
		e.row = clampInt(row, lo, hi)
	case 'H', 'f': // CUP / HVP
		r := n(0, 1) - 1
		c := n(1, 1) - 1
		r = clampInt(r, 0, e.grid.height-1)
		c = clampInt(c, 0, e.grid.width-1)
		if e.originMode {
			r = clampInt(r, e.scrollTop, e.scrollBottom)
		}
		e.row, e.col = r, c
	case 'J': // ED
		e.eraseDisplay(raw(0, 0))
	case 'K': // EL
		e.eraseLine(raw(0, 0))
	case 'L': // IL
		e.insertLines(n(0, 1))
	case 'M': // DL
		e.deleteLines(n(0, 1))
	case '@': // ICH
		e.insertChars(n(0, 1))
	case 'P': // DCH
		e.deleteChars(n(0, 1))
	case 'X': // ECH
		e.eraseChars(n(0, 1))
	case 'S': // SU
		e.scrollUp(n(0, 1))
	case 'T': // SD
		e.scrollDown(n(0, 1))
	case 'r': // DECSTBM
		top := n(0, 1) - 1
		bottom := n(1, e.grid.height) - 1
		if top < bottom && top >= 0 && bottom < e.grid.height {
			e.scrollTop, e.scrollBottom = top, bottom
		}
		e.row, e.col = 0, 0
		if e.originMode {
			e.row = e.scrollTop
		}
	case 'm': // SGR
		e.sgr(params)
	case 'h':
		if priv {
			e.decPrivate(params, true)
		}
	case 'l':
		if priv {
			e.decPrivate(params, false)
		}
	case 's': // SCP
		e.savedRow, e.savedCol = e.row, e.col
	case 'u': // RCP
		e.row, e.col = e.savedRow, e.savedCol
		e.clampCursor()
	}
}

func (e *Emulator) decPrivate(params []int, set bool) {
	for _, p := range params {
		switch p {
		case 25:
			e.cursorVisible = set
		case 6:
			e.originMode = set
			if set {
				e.row, e.col = e.scrollTop, 0
			} else {
				e.row, e.col = 0, 0
			}
		}
	}
}

func (e *Emulator) eraseDisplay(mode int) {
	switch mode {
	case 0:
		e.eraseLineFrom(e.row, e.col)
		for r := e.row + 1; r < e.grid.height; r++ {
			e.grid.rows[r].clear()
		}
	case 1:
		for r := 0; r < e.row; r++ {
			e.grid.rows[r].clear()
		}
		e.eraseLineTo(e.row, e.col)
	case 2, 3:
		for r := 0; r < e.grid.height; r++ {
			e.grid.rows[r].clear()
		}
	}
}

func (e *Emulator) eraseLine(mode int) {
	switch mode {
	case 0:
		e.eraseLineFrom(e.row, e.col)
	case 1:
		e.eraseLineTo(e.row, e.col)
	case 2:
		e.grid.rows[e.row].clear()
	}
}

func (e *Emulator) eraseLineFrom(r, c int) {
	row := e.grid.rows[r]
	for i := c; i < len(row); i++ {
		row[i] = blankCell
	}
}

func (e *Emulator) eraseLineTo(r, c int) {
	row := e.grid.rows[r]
	end := c
	if end > len(row)-1 {
		end = len(row) - 1
	}
	for i := 0; i <= end; i++ {
		row[i] = blankCell
	}
}

// insertLines inserts n blank lines at the cursor row, confined to the
// scroll region, shifting lines below down and dropping overflow at
// scroll_bottom.
func (e *Emulator) insertLines(n int) {
	if e.row < e.scrollTop || e.row > e.scrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		copy(e.grid.rows[e.row+1:e.scrollBottom+1], e.grid.rows[e.row:e.scrollBottom])
		e.grid.rows[e.row] = newRow(e.grid.width)
	}
}

// deleteLines deletes n lines at the cursor row, confined to the scroll
// region, shifting lines below up and blank-filling the bottom.
func (e *Emulator) deleteLines(n int) {
	if e.row < e.scrollTop || e.row > e.scrollBottom {
		return
	}
	for i := 0; i < n; i++ {
		copy(e.grid.rows[e.row:e.scrollBottom], e.grid.rows[e.row+1:e.scrollBottom+1])
		e.grid.rows[e.scrollBottom] = newRow(e.grid.width)
	}
}

// insertChars inserts n blanks at the cursor, shifting the remainder of
// the line right and dropping cells that fall past the right edge.
func (e *Emulator) insertChars(n int) {
	r := e.grid.rows[e.row]
	w := len(r)
	if e.col >= w {
		return
	}
	if n > w-e.col {
		n = w - e.col
	}
	copy(r[e.col+n:], r[e.col:w-n])
	for i := e.col; i < e.col+n; i++ {
		r[i] = blankCell
	}
}

// deleteChars deletes n chars at the cursor, shifting left and blank-
// filling the vacated tail.
func (e *Emulator) deleteChars(n int) {
	r := e.grid.rows[e.row]
	w := len(r)
	if e.col >= w {
		return
	}
	if n > w-e.col {
		n = w - e.col
	}
	copy(r[e.col:w-n], r[e.col+n:])
	for i := w - n; i < w; i++ {
		r[i] = blankCell
	}
}

// eraseChars replaces n cells at the cursor with blanks, no shift.
func (e *Emulator) eraseChars(n int) {
	r := e.grid.rows[e.row]
	end := e.col + n
	if end > len(r) {
		end = len(r)
	}
	for i := e.col; i < end; i++ {
		r[i] = blankCell
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
