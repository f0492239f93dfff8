package vt

// sgr implements SGR semantics: an empty parameter list resets the
// pen; otherwise parameters are walked left-to-right.
func (e *Emulator) sgr(params []int) {
	if len(params) == 0 {
		e.pen.Reset()
		return
	}
	i := 0
	for i < len(params) {
		p := params[i]
		if p < 0 {
			p = 0
		}
		switch {
		case p == 0:
			e.pen.Reset()
		case p == 1:
			e.pen.Attrs |= AttrBold
		case p == 3:
			e.pen.Attrs |= AttrItalic
		case p == 4:
			e.pen.Attrs |= AttrUnderline
		case p == 5, p == 6:
			e.pen.Attrs |= AttrBlink
		case p == 7:
			e.pen.Attrs |= AttrReverse
		case p == 8:
			e.pen.Attrs |= AttrHidden
		case p == 9:
			e.pen.Attrs |= AttrStrikethrough
		case p == 21, p == 22:
			e.pen.Attrs &^= AttrBold
		case p == 23:
			e.pen.Attrs &^= AttrItalic
		case p == 24:
			e.pen.Attrs &^= AttrUnderline
		case p == 25:
			e.pen.Attrs &^= AttrBlink
		case p == 27:
			e.pen.Attrs &^= AttrReverse
		case p == 28:
			e.pen.Attrs &^= AttrHidden
		case p == 29:
			e.pen.Attrs &^= AttrStrikethrough
		case p >= 30 && p <= 37:
			e.pen.FG = ANSIColor(uint8(p - 30))
		case p >= 90 && p <= 97:
			e.pen.FG = ANSIColor(uint8(p-90) + 8)
		case p >= 40 && p <= 47:
			e.pen.BG = ANSIColor(uint8(p - 40))
		case p >= 100 && p <= 107:
			e.pen.BG = ANSIColor(uint8(p-100) + 8)
		case p == 38 || p == 48:
			consumed, color := parseExtendedColor(params, i+1)
			if p == 38 {
				e.pen.FG = color
			} else {
				e.pen.BG = color
			}
			i += consumed
		case p == 39:
			e.pen.FG = DefaultColor
		case p == 49:
			e.pen.BG = DefaultColor
		}
		i++
	}
}

// parseExtendedColor reads the `5;idx` or `2;r;g;b` tail of an extended
// 38/48 SGR sequence starting at params[from]. It returns how many extra
// parameters were consumed (beyond the 38/48 itself) and the resulting
// colour; missing trailing values default to 0.
func parseExtendedColor(params []int, from int) (consumed int, c Color) {
	at := func(i int) int {
		if i >= len(params) || params[i] < 0 {
			return 0
		}
		return params[i]
	}
	if from >= len(params) {
		return 0, DefaultColor
	}
	switch at(from) {
	case 5:
		return 2, IndexedColor(uint8(at(from + 1)))
	case 2:
		return 4, RGBColor(uint8(at(from+1)), uint8(at(from+2)), uint8(at(from+3)))
	default:
		return 1, DefaultColor
	}
}

// ESC dispatches a short ESC <final> sequence "ESC verbs".
func (e *Emulator) ESC(intermediates []byte, final byte) {
	switch final {
	case '7': // save cursor
		e.savedRow, e.savedCol = e.row, e.col
	case '8': // restore cursor
		e.row, e.col = e.savedRow, e.savedCol
		e.clampCursor()
	case 'D': // index (linefeed)
		e.moveCursorDown(1)
	case 'E': // next line
		e.moveCursorDown(1)
		e.col = 0
	case 'M': // reverse index
		if e.row == e.scrollTop {
			e.scrollDown(1)
		} else if e.row > 0 {
			e.row--
		}
	case 'c': // full reset
		e.fullReset()
	}
}

func (e *Emulator) fullReset() {
	for r := 0; r < e.grid.height; r++ {
		e.grid.rows[r].clear()
	}
	e.pen.Reset()
	e.row, e.col = 0, 0
	e.cursorVisible = true
	e.originMode = false
	e.scrollTop, e.scrollBottom = 0, e.grid.height-1
	e.savedRow, e.savedCol = 0, 0
}

// OSC dispatches an OSC string list: only "0;title" and "2;title" are
// recognised, everything else is ignored.
func (e *Emulator) OSC(parts []string) {
	if len(parts) < 2 {
		return
	}
	switch parts[0] {
	case "0", "2":
		e.Title = parts[1]
	}
}
