package vt

import "testing"

func writeRow(e *Emulator, row int, text string) {
	e.row, e.col = row, 0
	for _, ch := range text {
		e.grid.rows[row][e.col] = Cell{Ch: ch, Pen: e.pen}
		e.col++
	}
}

func TestCSI_InsertLine(t *testing.T) {
	e := NewEmulator(5, 3)
	writeRow(e, 0, "aaaaa")
	writeRow(e, 1, "bbbbb")
	writeRow(e, 2, "ccccc")
	e.row = 1

	e.CSI([]int{1}, nil, 'L')

	if ch := e.Grid().Cell(1, 0).Ch; ch != ' ' {
		t.Errorf("row 1 after IL at row 1 = %q, want blank", ch)
	}
	if ch := e.Grid().Cell(2, 0).Ch; ch != 'b' {
		t.Errorf("row 2 after IL at row 1 = %q, want 'b' (shifted down)", ch)
	}
}

func TestCSI_DeleteLine(t *testing.T) {
	e := NewEmulator(5, 3)
	writeRow(e, 0, "aaaaa")
	writeRow(e, 1, "bbbbb")
	writeRow(e, 2, "ccccc")
	e.row = 0

	e.CSI([]int{1}, nil, 'M')

	if ch := e.Grid().Cell(0, 0).Ch; ch != 'b' {
		t.Errorf("row 0 after DL at row 0 = %q, want 'b' (shifted up)", ch)
	}
	if ch := e.Grid().Cell(2, 0).Ch; ch != ' ' {
		t.Errorf("row 2 after DL at row 0 = %q, want blank", ch)
	}
}

func TestCSI_InsertChars(t *testing.T) {
	e := NewEmulator(5, 1)
	writeRow(e, 0, "abcde")
	e.row, e.col = 0, 1

	e.CSI([]int{2}, nil, '@')

	got := string([]rune{
		e.Grid().Cell(0, 0).Ch, e.Grid().Cell(0, 1).Ch, e.Grid().Cell(0, 2).Ch,
		e.Grid().Cell(0, 3).Ch, e.Grid().Cell(0, 4).Ch,
	})
	if want := "a  bc"; got != want {
		t.Errorf("row after ICH 2 at col 1 = %q, want %q", got, want)
	}
}

func TestCSI_DeleteChars(t *testing.T) {
	e := NewEmulator(5, 1)
	writeRow(e, 0, "abcde")
	e.row, e.col = 0, 1

	e.CSI([]int{2}, nil, 'P')

	got := string([]rune{
		e.Grid().Cell(0, 0).Ch, e.Grid().Cell(0, 1).Ch, e.Grid().Cell(0, 2).Ch,
		e.Grid().Cell(0, 3).Ch, e.Grid().Cell(0, 4).Ch,
	})
	if want := "ade  "; got != want {
		t.Errorf("row after DCH 2 at col 1 = %q, want %q", got, want)
	}
}

func TestCSI_EraseChars(t *testing.T) {
	e := NewEmulator(5, 1)
	writeRow(e, 0, "abcde")
	e.row, e.col = 0, 1

	e.CSI([]int{2}, nil, 'X')

	got := string([]rune{
		e.Grid().Cell(0, 0).Ch, e.Grid().Cell(0, 1).Ch, e.Grid().Cell(0, 2).Ch,
		e.Grid().Cell(0, 3).Ch, e.Grid().Cell(0, 4).Ch,
	})
	if want := "a  de"; got != want {
		t.Errorf("row after ECH 2 at col 1 = %q, want %q", got, want)
	}
}

func TestCSI_EraseLineModes(t *testing.T) {
	e := NewEmulator(5, 1)
	writeRow(e, 0, "abcde")
	e.row, e.col = 0, 2

	e.CSI([]int{0}, nil, 'K') // from cursor to end

	got := string([]rune{
		e.Grid().Cell(0, 0).Ch, e.Grid().Cell(0, 1).Ch, e.Grid().Cell(0, 2).Ch,
		e.Grid().Cell(0, 3).Ch, e.Grid().Cell(0, 4).Ch,
	})
	if want := "ab   "; got != want {
		t.Errorf("row after EL 0 at col 2 = %q, want %q", got, want)
	}
}

func TestCSI_DECSTBM_SetsScrollRegion(t *testing.T) {
	e := NewEmulator(10, 10)

	e.CSI([]int{3, 7}, nil, 'r')

	if e.scrollTop != 2 || e.scrollBottom != 6 {
		t.Errorf("scrollTop,scrollBottom = (%d,%d), want (2,6)", e.scrollTop, e.scrollBottom)
	}
	if row, col := e.Cursor(); row != 0 || col != 0 {
		t.Errorf("cursor after DECSTBM = (%d,%d), want (0,0)", row, col)
	}
}

func TestCSI_DECSTBM_RejectsInvalidRegion(t *testing.T) {
	e := NewEmulator(10, 10)
	e.CSI([]int{7, 3}, nil, 'r') // top >= bottom, must be ignored

	if e.scrollTop != 0 || e.scrollBottom != 9 {
		t.Errorf("scrollTop,scrollBottom after invalid DECSTBM = (%d,%d), want unchanged (0,9)", e.scrollTop, e.scrollBottom)
	}
}

func TestCSI_SaveRestoreCursor(t *testing.T) {
	e := NewEmulator(10, 10)
	e.row, e.col = 4, 5

	e.CSI(nil, nil, 's')
	e.row, e.col = 0, 0
	e.CSI(nil, nil, 'u')

	if row, col := e.Cursor(); row != 4 || col != 5 {
		t.Errorf("cursor after SCP/RCP = (%d,%d), want (4,5)", row, col)
	}
}

func TestCSI_DECPrivate_CursorVisibility(t *testing.T) {
	e := NewEmulator(10, 10)

	e.CSI([]int{25}, []byte{'?'}, 'l')
	if e.CursorVisible() {
		t.Error("cursor should be hidden after CSI ?25l")
	}

	e.CSI([]int{25}, []byte{'?'}, 'h')
	if !e.CursorVisible() {
		t.Error("cursor should be visible after CSI ?25h")
	}
}

func TestCSI_UnknownFinalIsNoop(t *testing.T) {
	e := NewEmulator(5, 5)
	e.row, e.col = 2, 2

	e.CSI([]int{1}, nil, 'Z')

	if row, col := e.Cursor(); row != 2 || col != 2 {
		t.Errorf("cursor moved after unknown CSI final: (%d,%d), want unchanged (2,2)", row, col)
	}
}
