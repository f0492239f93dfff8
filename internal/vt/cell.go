package vt

// Attr is a bitset of the SGR boolean attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// Has reports whether all bits in mask are set.
func (a Attr) Has(mask Attr) bool { return a&mask == mask }

// Pen is the current graphic-rendition state: the attributes and colours
// applied to freshly-written cells.
type Pen struct {
	FG    Color
	BG    Color
	Attrs Attr
}

// Reset restores the pen to its default state (SGR 0).
func (p *Pen) Reset() {
	*p = Pen{}
}

// Cell is a single screen position: a code point plus the pen that was
// active when it was written.
type Cell struct {
	Ch rune
	Pen
}

// blankCell is what scrolling and erase operations fill with — always the
// default pen, never the operation's current pen.
var blankCell = Cell{Ch: ' '}

// row is one line of the grid.
type row []Cell

func newRow(width int) row {
	r := make(row, width)
	for i := range r {
		r[i] = blankCell
	}
	return r
}

func (r row) resize(width int) row {
	if len(r) == width {
		return r
	}
	nr := make(row, width)
	copy(nr, r)
	for i := len(r); i < width; i++ {
		nr[i] = blankCell
	}
	return nr
}

func (r row) clear() {
	for i := range r {
		r[i] = blankCell
	}
}
